package driver

import (
	"nbcell/internal/ast"
	"nbcell/internal/diag"
	"nbcell/internal/parser"
	"nbcell/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Program *ast.Program
	Bag     *diag.Bag
	// Err: первая синтаксическая ошибка; Program тогда nil.
	Err error
}

// Parse reads a cell from disk and parses it with the options a cell body
// gets once wrapped: top-level await and return are allowed.
func Parse(filePath string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	opts := parser.Options{
		Reporter:                   diag.BagReporter{Bag: bag},
		TopLevelAwait:              true,
		AllowReturnOutsideFunction: true,
	}
	prog, perr := parser.ParseFile(file, opts)

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Program: prog,
		Bag:     bag,
		Err:     perr,
	}, nil
}
