// Package config provides configuration management for the server.
//
// Values are resolved by Viper in this order: command-line flags that were
// set explicitly, environment variables, the .env file, and finally the
// `default` struct tags of the nested configuration structs.
//
// # Configuration Structure
//
//   - Server: bind host and port, document root, browser launch, directory listing
//   - Log: level, encoding and output sink
//
// Environment variables use the upper-cased key path with dots replaced by
// underscores, e.g. SERVER_PORT or LOG_LEVEL.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".", cmd.Flags())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
