// Package ospv converts SPIR-V shader modules into reflection artifacts.
//
// An artifact is a flat, deduplicated list of the types, constants and
// variables a module declares, where every reference is an index into that
// list. Names and layout decorations are keyed by the same index, and each
// entry point lists the indices of its interface variables.
//
// # Architecture Overview
//
//	ospv/            Root package with the file-level API
//	├── spirv/       SPIR-V binary decoder and module builder
//	├── convert/     Consumer, type extraction and graph building
//	├── schema/      Artifact data model and its JSON wire format
//	├── codec/       JSON and YAML rendering
//	├── fileio/      Whole-file reads and writes
//	├── errors/      Structured error types
//	└── cmd/ospv/    Command-line converter and artifact browser
//
// # Quick Start
//
//	a, err := ospv.ConvertFile("shaders/light.frag.spv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, e := range a.Entries {
//	    fmt.Println(e.Model, e.Name, e.Parameters)
//	}
//
//	err = ospv.WriteArtifact("light.frag.ospv", a, codec.DefaultOptions())
//
// References that cannot be resolved, such as entry parameters naming an
// id that is not a variable, are written as [schema.InvalidIndex].
//
// # Errors
//
// All failures are [errors.Error] values carrying the phase that failed and
// the source file involved:
//
//	var e *errors.Error
//	if stderrors.As(err, &e) && e.Kind == errors.KindTruncated {
//	    ...
//	}
package ospv
