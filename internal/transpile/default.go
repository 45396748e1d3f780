package transpile

var std = New(DefaultConfig())

// Default returns the Transpiler behind the package-level functions.
func Default() *Transpiler { return std }

// Transpile transpiles code with the default Transpiler and returns the
// generated source.
func Transpile(code, name string) (string, error) {
	res, err := std.Transpile(code, name)
	if err != nil {
		return "", err
	}
	return res.Code, nil
}

// FormatStack formats a stack produced by code from Transpile.
func FormatStack(stack string) string { return std.FormatStack(stack) }

// FormatErrorStack formats the stack of err produced by code from Transpile.
func FormatErrorStack(err StackError) string { return std.FormatErrorStack(err) }
