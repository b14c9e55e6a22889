// Package config manages user-level settings stored at ~/.nukit/config.yaml.
// Both tools read their flag defaults from it (output directory, template
// override, default page range); NUKIT_* environment variables take
// precedence over the file.
package config
