// Command rpncalc is an interactive infix calculator. It converts each
// line of input to Reverse Polish Notation and evaluates it against a
// variable table that persists for the session.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	rpn "github.com/chucktilbury/shunting-yard"
)

type config struct {
	// verbose prints the token stream for each expression.
	verbose bool
	// solve evaluates expressions; with it off, lines are converted only.
	solve bool
	// rpn prints the postfix form of each expression.
	rpn bool
}

func main() {
	log.SetFlags(0)
	var (
		inname string
		with   [][2]string
		cfg    = config{solve: true}
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file (default stdin)")
	flag.Func("given", "name=value variable definition (any number of times)", addwith)
	flag.BoolVar(&cfg.verbose, "verbose", false, "print the token stream for each expression")
	flag.BoolVar(&cfg.rpn, "rpn", false, "print the postfix form of each expression")
	flag.Parse()

	store := rpn.NewStore()
	ctx := rpn.NewContext(rpn.WithStore(store))
	for _, d := range with {
		nm := d[0]
		vl := d[1]
		// Evaluate against the same store so definitions can use earlier
		// ones.
		r, err := rpn.EvalString(vl, rpn.WithStore(store))
		if err != nil {
			log.Fatalf("setting %s: %v", nm, err)
		}
		ctx.Set(nm, r)
	}

	in, prompt, err := infile(inname)
	if err != nil {
		log.Fatal(err)
	}
	scan := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Print("enter an expression: ")
		}
		if !scan.Scan() {
			break
		}
		line := strings.TrimSpace(scan.Text())
		switch {
		case line == "":
			continue
		case line == "?":
			help()
			continue
		case line == "q":
			fmt.Println("quit")
			return
		case line[0] == '.' || line[0] == '/':
			if !command(line[1:], &cfg, ctx) {
				fmt.Println("quit")
				return
			}
			continue
		}
		run(line, &cfg, ctx)
	}
	if err := scan.Err(); err != nil {
		log.Fatal(err)
	}
}

func infile(inname string) (io.Reader, bool, error) {
	if inname == "" || inname == "-" {
		return os.Stdin, true, nil
	}
	f, err := os.Open(inname)
	if err != nil {
		return nil, false, err
	}
	return f, false, nil
}

// command dispatches a dot-command. The result is false when the session
// should end.
func command(cmd string, cfg *config, ctx *rpn.Context) bool {
	name, arg, _ := strings.Cut(cmd, " ")
	switch name {
	case "quit":
		return false
	case "h", "help":
		help()
	case "a", "vars":
		showVars(ctx.Store())
	case "r", "rpn":
		cfg.rpn = !cfg.rpn
		fmt.Printf("rpn flag: %t\n", cfg.rpn)
	case "s", "solve":
		cfg.solve = !cfg.solve
		fmt.Printf("solve flag: %t\n", cfg.solve)
	case "v", "verbo":
		cfg.verbose = !cfg.verbose
		fmt.Printf("verbose flag: %t\n", cfg.verbose)
	case "p", "print":
		printVar(ctx, strings.TrimSpace(arg))
	default:
		fmt.Printf("unknown command: .%s\n", cmd)
		help()
	}
	return true
}

// run converts and evaluates one expression line. Errors are reported and
// the session continues.
func run(line string, cfg *config, ctx *rpn.Context) {
	if cfg.verbose {
		printTokens(line)
	}
	p, err := rpn.ConvertString(line)
	if err != nil {
		fmt.Println(err)
		return
	}
	if cfg.rpn {
		fmt.Println(p)
	}
	if !cfg.solve {
		return
	}
	r, err := ctx.Eval(p)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%0.3f\n", r)
}

func printTokens(line string) {
	scan := rpn.NewLexer(strings.NewReader(line))
	for {
		tok, err := scan.Next()
		if err != nil {
			fmt.Println(err)
			return
		}
		if tok.Kind == rpn.TokEOF {
			return
		}
		fmt.Printf("%s\t%q\n", tok.Kind, tok.Text)
	}
}

func showVars(s *rpn.Store) {
	entries := s.Entries()
	if len(entries) == 0 {
		fmt.Println("no variables")
		return
	}
	fmt.Println("All variables:")
	for _, e := range entries {
		fmt.Printf("\t%s = %0.3f\n", e.Name, e.Value)
	}
}

func printVar(ctx *rpn.Context, name string) {
	if name == "" {
		fmt.Println("print needs a variable name")
		return
	}
	v, ok := ctx.Lookup(name)
	if !ok {
		fmt.Printf("undefined variable: %q\n", name)
		return
	}
	fmt.Printf("%s = %0.3f\n", name, v)
}

func help() {
	fmt.Print(`Infix to RPN calculator
	?|.h|.help    - this text
	.v|.verbo     - verbose mode toggle
	.r|.rpn       - show the rpn string
	.s|.solve     - toggle the solver flag
	.a|.vars      - show the vars table
	.p|.print var - show the value of a variable
	q|.quit       - leave the calculator

example:
	var_one = 12
	var_two = 2
	var_three = (var_one + 7) * var_two
	.p var_three
	var_three = 38.000
`)
}
