package views

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hance08/splitter/internal/constants"
	"github.com/hance08/splitter/internal/store"
	"github.com/hance08/splitter/internal/ui"
	"github.com/pterm/pterm"
)

// AmountFormatter renders a base-unit amount for display.
type AmountFormatter func(int64) string

func addressOrNone(addr common.Address) string {
	if addr == (common.Address{}) {
		return ""
	}
	return addr.Hex()
}

func RenderLedger(ledger *store.Ledger, balances map[common.Address]int64, format AmountFormatter) error {
	pterm.Println()
	ui.PrintL2Title("Ledger")
	infoData := pterm.TableData{
		{"Field", "Value"},
		{"Address", ledger.Address.Hex()},
		{"Owner", ledger.Owner.Hex()},
		{"Recipient A", ui.OrNone(addressOrNone(ledger.RecipientA))},
		{"Recipient B", ui.OrNone(addressOrNone(ledger.RecipientB))},
		{"Nonce", fmt.Sprint(ledger.Nonce)},
		{"Created", time.Unix(ledger.CreatedAt, 0).Format(constants.DateTimeFormat)},
	}
	if err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(infoData).
		Render(); err != nil {
		return err
	}

	if balances == nil {
		return nil
	}

	pterm.Println()
	return RenderBalances(balances, format)
}

func RenderBalances(balances map[common.Address]int64, format AmountFormatter) error {
	ui.PrintL2Title("Balances")
	if len(balances) == 0 {
		pterm.Info.Println("No outstanding balances")
		return nil
	}

	addrs := make([]common.Address, 0, len(balances))
	for addr := range balances {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool {
		return bytes.Compare(addrs[i][:], addrs[j][:]) < 0
	})

	tableData := pterm.TableData{{"Address", "Balance"}}
	var total int64
	for _, addr := range addrs {
		amount := balances[addr]
		total += amount
		tableData = append(tableData, []string{addr.Hex(), ui.Amount(amount, format(amount))})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total held: %s\n", format(total))
	return nil
}

func RenderLedgerList(ledgers []*store.Ledger) error {
	if len(ledgers) == 0 {
		pterm.Info.Println("No ledgers yet. Create one with 'splitter create'")
		return nil
	}

	tableData := pterm.TableData{{"Address", "Owner", "Configured", "Created"}}
	for _, l := range ledgers {
		configured := pterm.Red("no")
		if l.RecipientA != (common.Address{}) {
			configured = pterm.Green("yes")
		}
		tableData = append(tableData, []string{
			l.Address.Hex(),
			l.Owner.Hex(),
			configured,
			time.Unix(l.CreatedAt, 0).Format(constants.DateTimeFormat),
		})
	}

	pterm.DefaultSection.Printf("Ledgers")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d ledgers\n", len(ledgers))
	return nil
}

func RenderRecipients(recipientA, recipientB common.Address, configured bool) error {
	if !configured {
		pterm.Warning.Println("Ledger has no recipients yet. Bind them with 'splitter configure'")
		return nil
	}

	tableData := pterm.TableData{
		{"Recipient", "Address"},
		{"A", recipientA.Hex()},
		{"B", recipientB.Hex()},
	}
	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
