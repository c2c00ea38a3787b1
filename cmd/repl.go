package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"simple-bank/app"
	"simple-bank/config"
	"simple-bank/domain"
)

// prompter drives one interactive session: pick an operation, give an amount
// when one is needed, see the feedback, repeat until quit or end of input.
type prompter struct {
	in     *bufio.Scanner
	out    io.Writer
	style  styles
	bank   config.BankConfig
	logger *slog.Logger
}

func newPrompter(in io.Reader, out io.Writer, bank config.BankConfig, logger *slog.Logger) *prompter {
	return &prompter{
		in:     bufio.NewScanner(in),
		out:    out,
		style:  newStyles(out),
		bank:   bank,
		logger: logger,
	}
}

func (p *prompter) Run(session *app.Session) error {
	heading := fmt.Sprintf(msgWelcome, p.bank.Name)

	for {
		p.show(menu(heading))
		heading = msgAnythingElse

		line, ok := p.readLine()
		if !ok {
			break
		}
		sel, err := app.ParseSelector(line)
		if err != nil {
			p.showError(err)
			continue
		}

		var amount *domain.Money
		if sel.RequiresAmount() {
			p.show(fmt.Sprintf(msgAmountPrompt, sel.TransactionType()))
			line, ok = p.readLine()
			if !ok {
				break
			}
			m, err := readAmount(line)
			if err != nil {
				p.showError(err)
				continue
			}
			amount = &m
		}

		result, err := session.Execute(sel, amount)
		if err != nil {
			p.showError(err)
			continue
		}
		if result.Exit {
			break
		}
		p.show(result.Message)
	}

	if err := p.in.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	if err := session.Verify(); err != nil {
		p.logger.Error("session journal check failed", "error", err)
	}
	p.show(fmt.Sprintf(msgExit, p.bank.Name))
	return nil
}

// readAmount applies the input rules: well-formed, at most two decimals, positive.
func readAmount(text string) (domain.Money, error) {
	m, err := domain.ParseAmount(text)
	if err != nil {
		return domain.Money{}, err
	}
	if !m.IsPositive() {
		return domain.Money{}, fmt.Errorf("%w: %s", domain.ErrInvalidAmount, m)
	}
	return m, nil
}

func (p *prompter) readLine() (string, bool) {
	if !p.in.Scan() {
		return "", false
	}
	return p.in.Text(), true
}

func (p *prompter) show(msg string) {
	fmt.Fprintln(p.out, p.style.box.Render(msg))
}

func (p *prompter) showError(err error) {
	fmt.Fprintln(p.out, p.style.err.Render(app.UserMessage(err)))
}
