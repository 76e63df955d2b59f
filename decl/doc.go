// Package decl builds enumeration sets from YAML declaration documents.
//
// A declaration document lists sets, each with its variants and optional
// aliases:
//
//	sets:
//	  - name: data_type
//	    variants:
//	      - name: INT
//	        aliases: [integer, int32]
//	      - FLOAT
//
// A bare scalar is shorthand for a variant without aliases.
//
// # Usage
//
// Load a file and resolve against the built sets:
//
//	sets, err := decl.LoadFile("enums.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	dataType, _ := enumset.Get("data_type")
//	v, err := dataType.Resolve("Int-32")
//
// Sets built by the loader are sealed and, by default, published in the
// enumset package registry; pass WithRegistry(false) to keep them private.
//
// # Error Handling
//
// Ambiguous declarations (two names or aliases that normalize identically)
// fail the whole document: nothing is registered and the returned error
// wraps enumset.ErrDefinitionCollision together with the declaring set's
// name. This mirrors the core rule that a defective enumeration definition
// must not produce a partially usable type.
package decl
