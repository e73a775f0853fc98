package setup

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/vadiminshakov/tokenswap/internal/entity"
	"github.com/vadiminshakov/tokenswap/internal/services/swap"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	warning   = lipgloss.AdaptiveColor{Light: "#BF4343", Dark: "#F57373"}

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(highlight).
			Padding(1, 2).
			Bold(true).
			MarginBottom(1)

	infoStyle = lipgloss.NewStyle().
			Foreground(subtle)

	okStyle = lipgloss.NewStyle().
		Foreground(special).
		Bold(true)

	errStyle = lipgloss.NewStyle().
			Foreground(warning).
			Bold(true)
)

// RunSwapForm drives an interactive swap session in the terminal
// until the user quits.
func RunSwapForm(ctx context.Context, sess *swap.Session) error {
	for {
		fmt.Print("\033[H\033[2J") // Clear screen
		fmt.Println(headerStyle.Render("CURRENCY SWAP"))

		cat := sess.Catalog()
		if len(cat) == 0 {
			fmt.Println(errStyle.Render("No tokens available. Reload the catalog or quit."))
			var retry bool
			err := huh.NewForm(
				huh.NewGroup(
					huh.NewConfirm().
						Title("Reload catalog?").
						Value(&retry),
				),
			).Run()
			if err != nil {
				return err
			}
			if !retry {
				return nil
			}
			if err := sess.LoadCatalog(ctx); err != nil {
				fmt.Println(errStyle.Render(err.Error()))
			}
			continue
		}

		renderStatus(sess)

		var choice string
		err := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("What next?").
					Options(
						huh.NewOption("Enter amount", "amount"),
						huh.NewOption("Use percent of balance", "percent"),
						huh.NewOption("Change token to pay with", "from"),
						huh.NewOption("Change token to receive", "to"),
						huh.NewOption("Flip direction", "flip"),
						huh.NewOption("Reload catalog", "reload"),
						huh.NewOption("Swap", "submit"),
						huh.NewOption("Quit", "quit"),
					).
					Value(&choice),
			),
		).Run()
		if err != nil {
			return err
		}

		switch choice {
		case "amount":
			if err := promptAmount(sess); err != nil {
				return err
			}
		case "percent":
			if err := promptPercent(sess); err != nil {
				return err
			}
		case "from":
			if err := promptToken(cat, "Token to pay with", sess.SelectFrom); err != nil {
				return err
			}
		case "to":
			if err := promptToken(cat, "Token to receive", sess.SelectTo); err != nil {
				return err
			}
		case "flip":
			sess.Flip()
		case "reload":
			if err := sess.LoadCatalog(ctx); err != nil {
				fmt.Println(errStyle.Render(err.Error()))
				pause()
			}
		case "submit":
			res, err := sess.Submit(ctx)
			if err != nil {
				fmt.Println(errStyle.Render("Swap failed: " + err.Error()))
			} else {
				fmt.Println(okStyle.Render("Swapped " + res.String()))
			}
			pause()
		case "quit":
			return nil
		}
	}
}

func renderStatus(sess *swap.Session) {
	intent := sess.Intent()
	fromBal := sess.BalanceOf(intent.FromCurrency)

	fmt.Println(infoStyle.Render(fmt.Sprintf("State: %s", sess.State())))
	fmt.Println(infoStyle.Render(fmt.Sprintf("Balance: %s %s", fromBal.String(), intent.FromCurrency)))
	fmt.Printf("Pay:     %s %s\n", orDash(intent.FromAmount), intent.FromCurrency)
	fmt.Printf("Receive: %s %s\n", orDash(sess.Preview()), intent.ToCurrency)

	r := sess.Rate()
	if r.IsZero() {
		fmt.Println(infoStyle.Render("Rate:    unavailable"))
	} else {
		fmt.Println(infoStyle.Render(fmt.Sprintf("Rate:    1 %s = %s %s",
			intent.FromCurrency, r.String(), intent.ToCurrency)))
	}
	fmt.Println()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func promptAmount(sess *swap.Session) error {
	var amount string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Amount to pay").
				Description("Digits with at most one decimal point").
				Validate(func(s string) error {
					if !swap.ValidAmountText(s) {
						return errors.New("digits and at most one decimal point")
					}
					return nil
				}).
				Value(&amount),
		),
	).Run()
	if err != nil {
		return err
	}
	sess.SetAmount(amount)
	return nil
}

func promptPercent(sess *swap.Session) error {
	opts := make([]huh.Option[int], 0, len(sess.Presets()))
	for _, p := range sess.Presets() {
		opts = append(opts, huh.NewOption(strconv.Itoa(p)+"%", p))
	}

	var pct int
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Share of balance").
				Options(opts...).
				Value(&pct),
		),
	).Run()
	if err != nil {
		return err
	}
	sess.Percent(pct)
	return nil
}

func promptToken(cat entity.Catalog, title string, apply func(string)) error {
	opts := make([]huh.Option[string], 0, len(cat))
	for _, t := range cat {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s (%s)", t.Currency, t.Price.String()), t.Currency))
	}

	var currency string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(opts...).
				Value(&currency),
		),
	).Run()
	if err != nil {
		return err
	}
	apply(currency)
	return nil
}

func pause() {
	var ok bool
	_ = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().Title("Continue").Value(&ok),
		),
	).Run()
}
