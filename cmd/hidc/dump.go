package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/hiddesc/hiddesc/cmd/internal/cliutil"
)

type dumpCmd struct {
	sourceFlags
	Output string `short:"o" help:"Output file (default: stdout)." placeholder:"FILE"`
}

// itemNames maps (type, tag) of a short item prefix to its name, HID
// 1.11 ch. 6.2.2.4 through 6.2.2.8.
var itemNames = [3]map[byte]string{
	{ // main
		0x8: "Input", 0x9: "Output", 0xB: "Feature",
		0xA: "Collection", 0xC: "EndCollection",
	},
	{ // global
		0x0: "UsagePage", 0x1: "LogicalMinimum", 0x2: "LogicalMaximum",
		0x3: "PhysicalMinimum", 0x4: "PhysicalMaximum", 0x5: "UnitExponent",
		0x6: "Unit", 0x7: "ReportSize", 0x8: "ReportId", 0x9: "ReportCount",
		0xA: "Push", 0xB: "Pop",
	},
	{ // local
		0x0: "Usage", 0x1: "UsageMinimum", 0x2: "UsageMaximum",
		0x3: "DesignatorIndex", 0x4: "DesignatorMinimum", 0x5: "DesignatorMaximum",
		0x7: "StringIndex", 0x8: "StringMinimum", 0x9: "StringMaximum",
		0xA: "Delimiter",
	},
}

func (c *dumpCmd) Run(logger *slog.Logger) error {
	src, err := c.load(logger)
	if err != nil {
		return err
	}
	data, err := compileToBytes(src, logger)
	if err != nil {
		return c.sourceError(err)
	}
	out, closeOut, err := cliutil.GetOutput(c.Output)
	if err != nil {
		return err
	}
	defer closeOut()
	dumpItems(out, data)
	fmt.Fprintf(out, "%d bytes total\n", len(data))
	return nil
}

// dumpItems walks the byte stream item by item: offset, raw bytes, and
// the decoded prefix. Data written by bare source literals is not
// self-describing, so a stream containing them decodes as whatever
// items its bytes spell.
func dumpItems(out *os.File, data []byte) {
	for i := 0; i < len(data); {
		prefix := data[i]
		size := int(prefix & 0x3)
		if size == 3 {
			size = 4
		}
		end := i + 1 + size
		if end > len(data) {
			end = len(data)
		}
		raw := data[i:end]

		var value uint32
		for j := end - 1; j > i; j-- {
			value = value<<8 | uint32(data[j])
		}
		fmt.Fprintf(out, "%04X  %-14s %s\n", i, hexBytes(raw), describeItem(prefix, size, value))
		i = end
	}
}

func hexBytes(data []byte) string {
	var b strings.Builder
	for i, v := range data {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%02X", v)
	}
	return b.String()
}

func describeItem(prefix byte, size int, value uint32) string {
	typ := (prefix >> 2) & 0x3
	tag := prefix >> 4
	if typ == 3 {
		return fmt.Sprintf("Reserved(0x%02X)", prefix)
	}
	name, ok := itemNames[typ][tag]
	if !ok {
		return fmt.Sprintf("Reserved(0x%02X)", prefix)
	}
	if size == 0 {
		return name
	}
	return fmt.Sprintf("%s(0x%X)", name, value)
}
