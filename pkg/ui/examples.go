package ui

// example pairs a label with a preloaded snippet cycled through with
// ctrl+e. The set mirrors the scanner's contract edges so each token and
// error kind can be browsed without typing.
type example struct {
	name string
	code string
}

var examples = []example{
	{"valid identifiers", "071name 071test_var 070counter 048_temp"},
	{"invalid identifiers", "name _071invalid abc123"},
	{"numbers", "123 .5 3.14 2.5e10 1.2.3 2e"},
	{"keywords vs identifiers", "if else while return func 071func 070func 048func"},
	{"strings", "$hello world$ $test$ $unterminated"},
	{"operators", "+ - * / == != < > <= >= <>"},
	{"comments", "// single line\n/* multi line */ 071x"},
	{"mixed program", `// IBTAC sample
func 071main() {
    071x = .5 + 3.14;
    070counter = 048_temp;
    if (071x > 0) {
        071msg = $Hello IBTAC$;
        return 071msg;
    }
}`},
	{"error recovery", `_invalid 071name
$unterminated_string
071x = 1.2.3;
/* outer /* inner */ */`},
}
