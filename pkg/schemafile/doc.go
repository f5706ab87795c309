// Package schemafile loads validator schemas from declarative YAML or JSON
// documents.
//
// A document lists schemas by name; fields refer to nested schemas by name,
// in any order, so a single document can describe forward, mutual and
// self-referencing schemas:
//
//	schemas:
//	  - name: person
//	    strict: true
//	    fields:
//	      - {name: name, type: string}
//	      - {name: age, type: integer, required: false}
//	      - {name: address, type: json, schema: address}
//	      - {name: title, type: function, func: title_for_gender, required: false}
//	  - name: address
//	    fields:
//	      - {name: pincode, type: integer, error: "Pincode must be a number."}
//
// Function fields name a predicate supplied by the caller with WithFunc, or a
// schema method supplied with WithMethod. Documents are checked with unknown
// keys rejected, and every problem is reported as an error wrapping
// ErrInvalidDocument or validator.ErrInvalidSchema.
//
// Load, LoadFile, LoadFS and LoadRaw return a built validator.Registry. When
// several documents are loaded together they share one registry, so a schema
// may reference a schema declared in another document.
package schemafile
