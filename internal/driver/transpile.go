package driver

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strconv"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"nbcell/internal/diag"
	"nbcell/internal/parser"
	"nbcell/internal/source"
	"nbcell/internal/trace"
	"nbcell/internal/transpile"
)

// Cell: ячейка из памяти (stdin, тесты).
type Cell struct {
	Name string
	Text string
}

// TranspileOptions управляет пакетной транспиляцией.
type TranspileOptions struct {
	MaxDiagnostics int
	Jobs           int  // <= 0: GOMAXPROCS
	Timings        bool // добавлять OBS-диагностику с таймингами
}

// TranspileResult содержит результат транспиляции одной ячейки.
type TranspileResult struct {
	Path   string            // Имя ячейки или путь к файлу
	FileID source.FileID     // ID файла в FileSet
	Result *transpile.Result // nil, если ячейка не транспилировалась
	Bag    *diag.Bag         // Диагностики
}

// TranspileFiles loads every path and transpiles the files in parallel
// through tr. Results keep the order of paths; files that fail to load or
// parse get an error diagnostic instead of a Result.
func TranspileFiles(ctx context.Context, tr *transpile.Transpiler, paths []string, opts TranspileOptions) (*source.FileSet, []TranspileResult, error) {
	fileSet := source.NewFileSet()
	if len(paths) == 0 {
		return fileSet, nil, nil
	}

	// FileSet не потокобезопасен: грузим всё заранее
	fileIDs := make(map[string]source.FileID, len(paths))
	loadErrors := make(map[string]error, len(paths))
	for _, path := range paths {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	results := make([]TranspileResult, len(paths))
	err := fanOut(ctx, len(paths), opts.Jobs, func(i int) {
		path := paths[i]
		bag := diag.NewBag(opts.MaxDiagnostics)
		if loadErr, hadError := loadErrors[path]; hadError {
			bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, "failed to load file: "+loadErr.Error()))
			results[i] = TranspileResult{Path: path, Bag: bag}
			return
		}
		file := fileSet.Get(fileIDs[path])
		results[i] = transpileOne(tr, file, path, bag, opts.Timings)
	})
	return fileSet, results, err
}

// TranspileCells is TranspileFiles for cells already in memory.
func TranspileCells(ctx context.Context, tr *transpile.Transpiler, cells []Cell, opts TranspileOptions) (*source.FileSet, []TranspileResult, error) {
	fileSet := source.NewFileSet()
	fileIDs := make([]source.FileID, len(cells))
	for i, c := range cells {
		content, _ := source.Normalize([]byte(c.Text))
		path := c.Name
		if path == "" {
			path = "<cell>" // имя cell-<id> появится только после транспиляции
		}
		fileIDs[i] = fileSet.AddVirtual(path, content)
	}

	results := make([]TranspileResult, len(cells))
	err := fanOut(ctx, len(cells), opts.Jobs, func(i int) {
		bag := diag.NewBag(opts.MaxDiagnostics)
		results[i] = transpileOne(tr, fileSet.Get(fileIDs[i]), cells[i].Name, bag, opts.Timings)
	})
	return fileSet, results, err
}

// fanOut вызывает work(i) для i в [0, n) не более чем в jobs горутинах.
// Каждый индекс пишет только свою ячейку результата, мьютекс не нужен.
func fanOut(ctx context.Context, n, jobs int, work func(i int)) error {
	if n == 0 {
		return nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	sp := trace.BeginFrom(ctx, trace.ScopeDriver, "transpile")
	sp.WithExtra("cells", strconv.Itoa(n)).WithExtra("jobs", strconv.Itoa(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, n))

	for i := range n {
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			work(i)
			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		sp.End(err.Error())
		return err
	}
	sp.End("")
	return nil
}

func transpileOne(tr *transpile.Transpiler, file *source.File, name string, bag *diag.Bag, timings bool) TranspileResult {
	out := TranspileResult{Path: name, FileID: file.ID, Bag: bag}
	res, err := tr.Transpile(string(file.Content), name)
	if err != nil {
		bag.Add(errorDiagnostic(file, err))
		return out
	}
	out.Result = res
	if timings {
		report := res.Timings.Report()
		appendTimingDiagnostic(bag, timingPayload{
			Kind:    "cell",
			Path:    name,
			TotalMS: report.TotalMS,
			Phases:  report.Phases,
		})
	}
	return out
}

// errorDiagnostic turns a transpile failure into a diagnostic pointing into
// the cell file.
func errorDiagnostic(f *source.File, err error) diag.Diagnostic {
	d := diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.TrnParse,
		Message:  err.Error(),
		Primary:  source.Span{File: f.ID},
	}
	var terr *transpile.Error
	if !errors.As(err, &terr) {
		return d
	}

	d.Message = terr.Err.Error()
	var se *parser.SyntaxError
	switch {
	case errors.As(terr.Err, &se):
		d.Code = se.Diag.Code
		d.Message = se.Diag.Message
	case errors.Is(terr.Err, transpile.ErrBadWrapper):
		d.Code = diag.TrnBadWrapper
	}

	if terr.Line > 0 {
		d.Primary = spanAt(f, terr.Line, terr.Column)
	} else {
		d.Notes = append(d.Notes, diag.Note{
			Span: d.Primary,
			Msg:  fmt.Sprintf("reported by the %s pass outside of cell text", terr.Pass),
		})
	}
	return d
}

// spanAt возвращает односимвольный span по 1-based позиции, обрезанный по файлу.
func spanAt(f *source.File, line, col int) source.Span {
	size, err := safecast.Conv[uint32](len(f.Chars))
	if err != nil {
		panic(fmt.Errorf("file length overflow: %w", err))
	}

	var lineStart uint32
	if line > 1 && line-2 < len(f.LineIdx) {
		lineStart = f.LineIdx[line-2] + 1
	} else if line > 1 {
		lineStart = size
	}
	c, err := safecast.Conv[uint32](max(col-1, 0))
	if err != nil {
		panic(fmt.Errorf("column overflow: %w", err))
	}

	start := min(lineStart+c, size)
	end := min(start+1, size)
	return source.Span{File: f.ID, Start: start, End: end}
}
