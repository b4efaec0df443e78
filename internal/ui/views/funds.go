package views

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/hance08/splitter/internal/splitter"
	"github.com/hance08/splitter/internal/ui"
	"github.com/pterm/pterm"
)

func RenderSplit(split splitter.Split, recipientA, recipientB common.Address, format AmountFormatter) error {
	pterm.Success.Printf("Deposit of %s split\n", format(split.Amount))

	tableData := pterm.TableData{
		{"Credited", "Amount"},
		{recipientA.Hex(), format(split.Half)},
		{recipientB.Hex(), format(split.Half)},
	}
	if split.Remainder > 0 {
		tableData = append(tableData, []string{
			split.Sender.Hex() + pterm.Gray(" (remainder)"),
			format(split.Remainder),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	ui.PrintSeparator()
	return nil
}

func RenderBalance(address common.Address, amount int64, format AmountFormatter) error {
	tableData := pterm.TableData{
		{"Address", "Balance"},
		{address.Hex(), ui.Amount(amount, format(amount))},
	}
	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}

func RenderWithdrawal(address common.Address, amount int64, format AmountFormatter) {
	pterm.Success.Printf("Released %s to %s\n", format(amount), address.Hex())
	ui.PrintSeparator()
}
