// Package config loads the settings that drive an authorization flow.
//
// Settings are resolved in three layers, later layers winning:
//
//  1. Built-in defaults (GetDefaultConfig): Google endpoints, port 3888,
//     redirect URL http://localhost:3888, Drive and Sheets scopes.
//  2. config.yaml in the configuration directory (~/.config/gsetup by default).
//  3. GSETUP_* environment variables.
//
// Command-line flags are applied on top by the cmd package.
//
// Example config.yaml:
//
//	scopes:
//	  - https://www.googleapis.com/auth/drive
//	port: 3888
//	redirectURL: http://localhost:3888
//	envFile: .env
//	callbackTimeout: 10m
//	apis:
//	  - name: Google Drive API
//	    id: drive.googleapis.com
package config
