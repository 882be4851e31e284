// Package main provides the urlrisk command line tool.
//
// urlrisk flags URLs that show common phishing traits. It runs offline
// against compiled-in reference lists that can be overridden from a list
// directory.
//
// Usage:
//
//	urlrisk scan <url>
//	urlrisk serve
//
// See --help for all available options.
package main

func main() {
	Execute()
}
