package models

import "time"

// Voice is a text-to-speech model listed by tts/voices.
type Voice struct {
	ModelToken             string    `json:"model_token"`
	TTSModelType           string    `json:"tts_model_type"`
	CreatorUserToken       string    `json:"creator_user_token"`
	CreatorUsername        string    `json:"creator_username"`
	CreatorDisplayName     string    `json:"creator_display_name"`
	Title                  string    `json:"title"`
	IETFLanguageTag        string    `json:"ietf_language_tag"`
	IETFPrimaryLanguageTag string    `json:"ietf_primary_language_subtag"`
	IsFrontPageFeatured    bool      `json:"is_front_page_featured"`
	CategoryTokens         []string  `json:"category_tokens"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// VoiceList is the body of tts/voices and tts/voices/{category}.
type VoiceList struct {
	Success bool    `json:"success"`
	Voices  []Voice `json:"voices"`
}

// Category groups voices. Categories may nest via MaybeSuperCategoryToken.
type Category struct {
	CategoryToken           string    `json:"category_token"`
	ModelType               string    `json:"model_type"`
	MaybeSuperCategoryToken *string   `json:"maybe_super_category_token"`
	CanDirectlyHaveModels   bool      `json:"can_directly_have_models"`
	CanHaveSubcategories    bool      `json:"can_have_subcategories"`
	CanOnlyModsApply        bool      `json:"can_only_mods_apply"`
	Name                    string    `json:"name"`
	NameForDropdown         string    `json:"name_for_dropdown"`
	IsModApproved           *bool     `json:"is_mod_approved"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

// CategoryList is the body of tts/categories.
type CategoryList struct {
	Success    bool       `json:"success"`
	Categories []Category `json:"categories"`
}
