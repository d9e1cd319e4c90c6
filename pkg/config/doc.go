// Package config loads environment-based configuration into tagged
// structs using the env and godotenv libraries.
//
// A .env file in the working directory is read once per process and then
// every Load call parses the environment into the given struct according
// to its `env` tags. Defaults come from `envDefault` tags, so a struct
// loaded in an empty environment is still fully populated.
package config
