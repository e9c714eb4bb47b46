// Package compiler turns raw table text into domain values: the
// header line into a MachineType and each body line into a Transition.
package compiler

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lviana15/tapeconv/pkg/domain"
)

// Parser converts raw table text into domain transitions.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// ResolveHeader resolves the first line of a table into the source
// machine type.
func (p *Parser) ResolveHeader(line string) (domain.MachineType, error) {
	return domain.ParseMachineType(line)
}

// ParseLine parses one transition line.
//
// Text after the first comment delimiter is dropped and the remainder
// trimmed; if nothing is left the line is skipped and ParseLine
// returns (nil, nil). Otherwise the line must hold exactly five
// whitespace-separated tokens:
//
//	<state> <symbol> <new_symbol> <direction> <new_state>
func (p *Parser) ParseLine(line string) (*domain.Transition, error) {
	if i := strings.IndexRune(line, domain.CommentDelim); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}

	parts := strings.Fields(line)
	if len(parts) != 5 {
		return nil, &domain.PartCountError{Count: len(parts)}
	}

	currentSymbol, err := parseSymbol(parts[1])
	if err != nil {
		return nil, err
	}
	newSymbol, err := parseSymbol(parts[2])
	if err != nil {
		return nil, err
	}
	direction, err := domain.ParseDirection(parts[3])
	if err != nil {
		return nil, err
	}

	return &domain.Transition{
		CurrentState:  parts[0],
		CurrentSymbol: currentSymbol,
		NewSymbol:     newSymbol,
		Direction:     direction,
		NewState:      parts[4],
	}, nil
}

// Parse reads a whole table: header first, then every transition line.
// Line-level failures are wrapped with their 1-based line number. The
// first failure aborts the parse.
func (p *Parser) Parse(src []byte) (domain.MachineType, []domain.Transition, error) {
	scanner := bufio.NewScanner(bytes.NewReader(src))
	if !scanner.Scan() {
		return 0, nil, &domain.HeaderError{Line: "file is empty"}
	}
	machineType, err := p.ResolveHeader(scanner.Text())
	if err != nil {
		return 0, nil, err
	}

	var transitions []domain.Transition
	lineNo := 1
	for scanner.Scan() {
		lineNo++
		t, err := p.ParseLine(scanner.Text())
		if err != nil {
			return 0, nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if t == nil {
			continue
		}
		transitions = append(transitions, *t)
	}
	if err := scanner.Err(); err != nil {
		return 0, nil, fmt.Errorf("failed to read table: %w", err)
	}

	return machineType, transitions, nil
}

func parseSymbol(token string) (rune, error) {
	if utf8.RuneCountInString(token) != 1 {
		return 0, &domain.SymbolError{Token: token}
	}
	r, _ := utf8.DecodeRuneInString(token)
	return r, nil
}
