// Package services implements the driving ports: resume assembly from
// LaTeX sections and the latest-PR contribution snippet.
//
// Services depend only on domain types, driven ports and the latex
// parser. Infrastructure (file access, TOML, GitHub) is injected.
package services
