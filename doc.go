/*
Package contentdisposition parses and generates the Content-Disposition
header (RFC 6266), including file names in RFC 5987 encoding.

Parse is strict: it accepts exactly the grammar of RFC 6266 Section 4.1
(with the implied linear whitespace of RFC 2616) and returns an error for
anything else, including duplicate parameters and ext-values in charsets
other than UTF-8 and ISO-8859-1. Content-Disposition is a common vector for
response splitting and filename smuggling, so nothing is salvaged from
a malformed header.

Create builds a header for a file name, quoting and escaping it, and
falling back from RFC 5987 encoding to a plain ISO-8859-1 'filename'
for clients that do not understand 'filename*':

	Create("€ rates.pdf")
	// attachment; filename="? rates.pdf"; filename*=UTF-8''%E2%82%AC%20rates.pdf

All functions are pure and safe for concurrent use.
*/
package contentdisposition
