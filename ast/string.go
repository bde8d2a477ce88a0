package ast

import (
	"fmt"
	"strings"
)

func (lit Literal) String() string {
	if lit.IsLabel() {
		return lit.Label
	}
	return fmt.Sprintf("0x%04x", lit.Number)
}

func (op Register) String() string {
	return op.Reg.String()
}

func (op IndirectRegister) String() string {
	return "[" + op.Reg.String() + "]"
}

func (op IndirectOffset) String() string {
	return fmt.Sprintf("[%v + %v]", op.Reg, op.Offset)
}

func (op IndirectLiteral) String() string {
	return "[" + op.Address.String() + "]"
}

func (op Immediate) String() string {
	return op.Lit.String()
}

func (Push) String() string {
	return "PUSH"
}

func (Pop) String() string {
	return "POP"
}

func (inst Basic) String() string {
	return fmt.Sprintf("%v %v, %v", inst.Op, inst.B, inst.A)
}

func (inst Special) String() string {
	return fmt.Sprintf("%v %v", inst.Op, inst.A)
}

func (inst Label) String() string {
	return ":" + inst.Name
}

func (inst Data) String() string {
	items := make([]string, 0, len(inst.Data))
	for _, datum := range inst.Data {
		items = append(items, fmt.Sprint(datum))
	}
	return "DAT " + strings.Join(items, ", ")
}

func (datum DataLabel) String() string {
	return ":" + datum.Name
}

func (datum DataWord) String() string {
	return fmt.Sprintf("0x%04x", datum.Word)
}

// stringEscape maps characters to their escaped form inside quotes.
var stringEscape = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\t", `\t`,
	"\r", `\r`,
	"\x00", `\0`,
)

func (datum DataString) String() string {
	return `"` + stringEscape.Replace(datum.Text) + `"`
}
