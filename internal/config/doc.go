// Package config loads reposearch's TOML configuration.
//
// # Discovery
//
// Load reads ~/.config/reposearch/config.toml unless a path is given. A
// missing file is not an error; Default is used instead.
//
// # Keys
//
//	base_url    = "https://api.github.com/legacy/repos/search/"
//	user_agent  = "reposearch/0.1"
//	token       = ""        # GITHUB_TOKEN is used when empty
//	timeout     = ""        # Go duration, empty means no timeout
//	log_file    = "~/.local/state/reposearch/reposearch.log"
//	log_level   = "info"    # trace, debug, info, warn, error, disabled
//	show_errors = false
//	theme       = ""        # initial theme when no preference is saved
//
// Every key is optional. String values are trimmed, empty values fall back
// to defaults and paths get tilde expansion. The merged result is checked
// with go-playground/validator; failures name the offending keys.
package config
