// Command chxbrl extracts the Companies House fixed-catalog row tuples
// from bulk XBRL/iXBRL accounts filings.
package main

func main() {
	Execute()
}
