// Package config provides configuration loading, merging, and validation for
// the FakeYou client.
//
// Configuration is assembled from the following sources, highest priority
// first (a source only fills fields the previous ones left empty):
//  1. Environment variables prefixed with FAKEYOU_
//  2. JSON config file named by FAKEYOU_CONFIG
//  3. Built-in defaults ([Default])
//
// The main entry point is [GetClientConfig]. Programs that configure the
// client in code can start from [Default] instead.
package config
