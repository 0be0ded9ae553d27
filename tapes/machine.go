package tapes

import (
	"strings"
)

const (
	TapeSize = 30000

	DefaultBudget = 1_000_000
)

type State uint8

const (
	StateRunning State = iota
	StateHalted
	StateTruncated
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateHalted:
		return "halted"
	case StateTruncated:
		return "truncated"
	}
	return "unknown"
}

type Result struct {
	Output    string
	Steps     int
	Truncated bool
}

type Machine struct {
	Program string
	Budget  int

	Tape    []byte
	Pointer int
	IP      int
	Steps   int

	input    []rune
	inputPos int
	output   strings.Builder
	brackets []int
	lost     bool
}

func New(program string, input string, budget int) *Machine {
	return &Machine{
		Program:  program,
		Budget:   budget,
		Tape:     make([]byte, TapeSize),
		input:    []rune(input),
		brackets: matchBrackets(program),
	}
}

// Run executes program until it leaves the program, jumps from an unmatched
// bracket, or spends budget steps.
func Run(program string, input string, budget int) Result {
	return New(program, input, budget).Run()
}

// matchBrackets pairs each bracket with its partner. Unmatched brackets map to
// -1.
func matchBrackets(program string) []int {
	ret := make([]int, len(program))
	var stack []int
	for i := 0; i < len(program); i++ {
		ret[i] = -1
		switch program[i] {
		case '[':
			stack = append(stack, i)
		case ']':
			if len(stack) == 0 {
				continue
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			ret[open] = i
			ret[i] = open
		}
	}
	return ret
}

func (m *Machine) State() State {
	if m.Steps >= m.Budget {
		return StateTruncated
	}
	if m.lost || m.IP < 0 || m.IP >= len(m.Program) {
		return StateHalted
	}
	return StateRunning
}

// Output returns what the program has printed so far.
func (m *Machine) Output() string {
	return m.output.String()
}

// Step executes one instruction. It returns false once the machine is no
// longer running.
func (m *Machine) Step() bool {
	if m.State() != StateRunning {
		return false
	}
	m.Steps++

	switch m.Program[m.IP] {
	case '>':
		m.Pointer = (m.Pointer + 1) % TapeSize
	case '<':
		m.Pointer = (m.Pointer - 1 + TapeSize) % TapeSize
	case '+':
		m.Tape[m.Pointer]++
	case '-':
		m.Tape[m.Pointer]--
	case '.':
		m.output.WriteRune(rune(m.Tape[m.Pointer]))
	case ',':
		if m.inputPos < len(m.input) {
			m.Tape[m.Pointer] = byte(m.input[m.inputPos])
			m.inputPos++
		} else {
			m.Tape[m.Pointer] = 0
		}
	case '[':
		if m.Tape[m.Pointer] == 0 {
			m.jump()
		}
	case ']':
		if m.Tape[m.Pointer] != 0 {
			m.jump()
		}
	}

	if !m.lost {
		m.IP++
	}
	return m.State() == StateRunning
}

// jump moves to the partner bracket. A bracket without a partner leaves the
// instruction pointer nowhere, which ends the run.
func (m *Machine) jump() {
	target := m.brackets[m.IP]
	if target < 0 {
		m.lost = true
		return
	}
	m.IP = target
}

func (m *Machine) Run() Result {
	for m.Step() {
	}
	return Result{
		Output:    m.Output(),
		Steps:     m.Steps,
		Truncated: m.Steps >= m.Budget,
	}
}
