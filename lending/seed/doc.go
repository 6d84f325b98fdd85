// Package seed loads a catalog from a YAML document.
//
// The document has three optional lists, applied in this order:
//
//	books:
//	  - isbn: "978-0261102217"
//	    title: The Hobbit
//	    author: J.R.R. Tolkien
//	    category: Fantasy
//	patrons:
//	  - id: P001
//	    name: Alice
//	loans:
//	  - isbn: "978-0261102217"
//	    patron: P001
//
// Every entry goes through the regular catalog operations, so a seed is subject to the same rules
// as interactive use. Applying stops at the first rejected entry.
package seed
