// Package models holds the request and response types exchanged with the
// FakeYou API. Field names follow the JSON keys used on the wire.
package models
