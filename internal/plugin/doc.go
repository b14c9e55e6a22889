// Package plugin scaffolds new Nushell plugin projects. It powers the
// nu-plugin-init command: a plugin name is validated and normalized into its
// snake and Pascal forms, a template tree (embedded by default) is copied
// into a staging directory, ordered placeholder rules are applied to the
// source files, and the finished tree is renamed into place as
// nu_plugin_<snake>.
package plugin
