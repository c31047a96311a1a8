// Package config provides configuration management for hris-sync.
//
// Settings come from environment variables, optionally seeded from a .env file, and
// are bound to nested keys by viper (DIRECTORY_BASE_DN -> directory.base_dn). Defaults
// are declared on the section structs with `default` tags and checked with `validate`
// tags after loading.
//
// # Configuration Structure
//
//   - Server: HTTP trigger port and deadlines
//   - Log: logging level and format
//   - Database: HR store driver and connection details
//   - Directory: LDAP endpoint, bind credentials and search base
//   - Storage: S3/MinIO archival of reports and exports
//   - Sync: worker count, fuzzy threshold and call timeout
//
// # Usage
//
//	loader := config.FileLoader{Path: "."}
//	cfg, err := loader.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Directory.BaseDN)
package config
