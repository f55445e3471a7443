package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/peterh/liner"

	"github.com/Bayzid03/IBTAC-Lexical-Analyzer/pkg/driver"
	"github.com/Bayzid03/IBTAC-Lexical-Analyzer/pkg/harness"
	"github.com/Bayzid03/IBTAC-Lexical-Analyzer/pkg/lexer"
	"github.com/Bayzid03/IBTAC-Lexical-Analyzer/pkg/source"
	"github.com/Bayzid03/IBTAC-Lexical-Analyzer/pkg/ui"
)

const historyFile = ".ibtac_history"

type CLI struct {
	Scan scanCommand `cmd:"" help:"Scan a source file and print the token table"`
	Eval evalCommand `cmd:"" help:"Scan an inline snippet"`
	Repl replCommand `cmd:"" help:"Interactive line-by-line scanning"`
	Test testCommand `cmd:"" help:"Run the acceptance cases"`
	UI   uiCommand   `cmd:"" name:"ui" help:"Launch the interactive token table browser"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("ibtac"),
		kong.Description("Lexical analyzer for the IBTAC language."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run())
}

type scanCommand struct {
	File      string `arg:"" help:"IBTAC source file to scan."`
	JSON      bool   `help:"Emit the result as JSON."`
	NoSummary bool   `help:"Suppress the error summary."`
}

func (c *scanCommand) Run() error {
	result, err := driver.ScanFile(c.File)
	if err != nil {
		return err
	}
	if c.JSON {
		if err := driver.WriteJSON(os.Stdout, result); err != nil {
			return err
		}
	} else if c.NoSummary {
		driver.WriteTokenTable(os.Stdout, result)
	} else {
		driver.DisplayResult(os.Stdout, result)
	}
	// Lexical errors never abort the scan; the non-zero exit is this
	// command's own judgment for script use.
	if result.HasErrors() {
		return fmt.Errorf("%d lexical error(s) found", len(result.Errors))
	}
	return nil
}

type evalCommand struct {
	Code string `short:"e" required:"" help:"Inline IBTAC snippet."`
	JSON bool   `help:"Emit the result as JSON."`
}

func (c *evalCommand) Run() error {
	result := driver.ScanString(c.Code)
	if c.JSON {
		return driver.WriteJSON(os.Stdout, result)
	}
	driver.DisplayResult(os.Stdout, result)
	return nil
}

type replCommand struct{}

func (c *replCommand) Run() error {
	fmt.Println("IBTAC scanner REPL. Ctrl+C cancels input, Ctrl+D exits. Type :quit to exit.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt("ibtac> ")
		if err != nil {
			if err == liner.ErrPromptAborted {
				continue
			}
			if err == io.EOF {
				fmt.Println()
				return nil
			}
			return err
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if trimmed == ":quit" {
			return nil
		}

		result := lexer.Scan(source.NewReplSource(line))
		driver.DisplayResult(os.Stdout, result)
		ln.AppendHistory(line)
	}
}

type testCommand struct{}

func (c *testCommand) Run() error {
	results, err := harness.RunAll(context.Background(), harness.DefaultCases())
	if err != nil {
		return err
	}
	if failed := harness.WriteReport(os.Stdout, results); failed > 0 {
		return fmt.Errorf("%d case(s) failed", failed)
	}
	return nil
}

type uiCommand struct {
	File string `arg:"" optional:"" help:"Source file to preload."`
}

func (c *uiCommand) Run() error {
	initial := ""
	if c.File != "" {
		src, err := source.ReadFile(c.File)
		if err != nil {
			return err
		}
		initial = src.Content
	}
	return ui.Run(initial)
}
