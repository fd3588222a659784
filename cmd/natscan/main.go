// Package main provides the entry point for the natscan CLI.
//
// natscan extracts structured naturalisation records (name, address,
// date) from noisy OCR'd gazette articles, either harvested from the
// bibliographic API or read from a local file.
//
// Usage:
//
//	natscan extract --query "naturalisation" --api-key KEY
//	natscan extract --input articles.jsonl
//
// See --help for all available options.
package main

// main is the entry point for natscan.
func main() {
	Execute()
}
