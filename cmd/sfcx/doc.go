// Package main is the entry point of sfcx, the template inheritance
// transform for single-file components.
//
// Usage:
//
//	sfcx transform src/pages/Home.vue
//	sfcx build --root src --out dist/src --report report.json
//	sfcx serve --port 8000
package main
