// Package version records the installer's release version.
package version

// Current is the version reported by 'gpt-installer about' and written into
// the install manifest.
const Current = "1.2.0"
