package views

import (
	"time"

	"github.com/hance08/splitter/internal/constants"
	"github.com/hance08/splitter/internal/store"
	"github.com/pterm/pterm"
)

func RenderHistory(entries []*store.JournalEntry, format AmountFormatter) error {
	if len(entries) == 0 {
		pterm.Info.Println("No history for this ledger")
		return nil
	}

	tableData := pterm.TableData{{"Time", "Event", "Actor", "Amount"}}
	for _, e := range entries {
		amount := ""
		if e.Kind == store.KindDeposit || e.Kind == store.KindWithdraw {
			amount = format(e.Amount)
		}
		tableData = append(tableData, []string{
			time.Unix(e.CreatedAt, 0).Format(constants.DateTimeFormat),
			colorKind(e.Kind),
			e.Actor.Hex(),
			amount,
		})
	}

	pterm.DefaultSection.Printf("History")
	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}

func RenderPayouts(payouts []*store.Payout, format AmountFormatter) error {
	if len(payouts) == 0 {
		pterm.Info.Println("No payouts for this ledger")
		return nil
	}

	tableData := pterm.TableData{{"Time", "Payout", "Recipient", "Amount"}}
	for _, p := range payouts {
		tableData = append(tableData, []string{
			time.Unix(p.CreatedAt, 0).Format(constants.DateTimeFormat),
			p.ID,
			p.Recipient.Hex(),
			format(p.Amount),
		})
	}

	pterm.DefaultSection.Printf("Payouts")
	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}

func colorKind(kind string) string {
	switch kind {
	case store.KindDeposit:
		return pterm.Green(kind)
	case store.KindWithdraw:
		return pterm.Red(kind)
	default:
		return pterm.Gray(kind)
	}
}
