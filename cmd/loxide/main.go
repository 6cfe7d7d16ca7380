package main

// This is an interpreter for the Lox programming language written in Go.

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/loxlang/loxide/internal/config"
	"github.com/loxlang/loxide/internal/lox"
)

func main() {
	args := os.Args[1:]
	if len(args) > 1 {
		fmt.Println("Usage: loxide [script]")
		os.Exit(64)
	}

	wd, err := os.Getwd()
	exitOnError(err, 1)
	cfg, err := config.FindAndLoad(wd)
	exitOnError(err, 1)

	reporter := lox.NewSimpleReporter(os.Stderr)
	if len(args) != 1 {
		runPrompt(cfg, reporter)
	} else {
		runFile(args[0], cfg, reporter)
	}
}

func run(script string, cfg *config.Config, reporter lox.Reporter) {
	scanner := lox.NewScanner([]rune(script), reporter)
	tokens := scanner.Scan()
	parser := lox.NewParser(tokens, reporter)
	expr := parser.Parse()
	if reporter.HadError() {
		return
	}
	if cfg.Debug.PrintAst {
		printer := &lox.AstPrinter{}
		fmt.Println(printer.Print(expr))
	}
	interpreter := lox.NewInterpreter(expr, reporter)
	interpreter.Interpret(os.Stdout)
}

// Run the interpreter in REPL mode. Each line goes through the pipeline on
// its own, errors on one line do not end the session.
func runPrompt(cfg *config.Config, reporter lox.Reporter) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(cfg.Repl.History); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(cfg.Repl.History); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(cfg.Repl.Prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			break
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		exitOnError(err, 1)

		if strings.TrimSpace(line) == "exit" {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		run(line, cfg, reporter)
		reporter.Reset()
	}
}

// Run the given file as script
func runFile(fpath string, cfg *config.Config, reporter lox.Reporter) {
	bytes, err := ioutil.ReadFile(fpath)
	exitOnError(err, 1)

	run(string(bytes), cfg, reporter)
	exitIf(reporter.HadError(), 65)
	exitIf(reporter.HadRuntimeError(), 70)
}

func exitOnError(err error, status int) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v", err)
		os.Exit(status)
	}
}

func exitIf(cond bool, status int) {
	if cond {
		os.Exit(status)
	}
}
