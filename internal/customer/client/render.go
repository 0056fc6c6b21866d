package client

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/akerstrom/insurance-platform-showcase/contracts/insurance"
)

// Summary is the policy overview shown above the cards.
type Summary struct {
	Pid          string
	Count        int
	ByType       map[insurance.InsuranceType]int
	TotalPremium insurance.Money
}

// Summarize counts policies by type and sums their monthly premiums.
func Summarize(insurances []insurance.CustomerInsurance) Summary {
	s := Summary{ByType: make(map[insurance.InsuranceType]int, len(insurance.InsuranceTypes))}
	for _, ci := range insurances {
		if s.Pid == "" {
			s.Pid = ci.Pid
		}
		s.Count++
		s.ByType[ci.Type]++
		s.TotalPremium = s.TotalPremium.Add(ci.Premium)
	}
	return s
}

// Render writes the overview followed by one card per policy.
func Render(w io.Writer, insurances []insurance.CustomerInsurance) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	s := Summarize(insurances)
	fmt.Fprintln(tw, "Policy Overview")
	fmt.Fprintf(tw, "  Customer ID\t%s\n", FormatPid(s.Pid))
	fmt.Fprintf(tw, "  Active Policies\t%d\n", s.Count)
	for _, t := range insurance.InsuranceTypes {
		if n := s.ByType[t]; n > 0 {
			fmt.Fprintf(tw, "    %s\t%d\n", t, n)
		}
	}
	fmt.Fprintf(tw, "  Total Monthly Premium\t%s\n", FormatSEK(s.TotalPremium))

	for _, ci := range insurances {
		fmt.Fprintln(tw)
		renderCard(tw, ci)
	}
	return tw.Flush()
}

func renderCard(w io.Writer, ci insurance.CustomerInsurance) {
	fmt.Fprintf(w, "[%s] %s\tPolicy #%s\n", ci.Type, ci.Status, ci.ID)
	fmt.Fprintf(w, "  Premium\t%s /month\n", FormatSEK(ci.Premium))
	if !ci.IsCar() {
		return
	}
	if ci.Vehicle == nil {
		fmt.Fprintln(w, "  Vehicle Details Unavailable")
		fmt.Fprintln(w, "  Unable to retrieve vehicle information for this policy.")
		return
	}
	v := ci.Vehicle
	fmt.Fprintln(w, "  Vehicle Information")
	fmt.Fprintf(w, "    Registration Number\t%s\n", v.Regnr)
	fmt.Fprintf(w, "    Make & Model\t%s %s\n", v.Make, v.Model)
	fmt.Fprintf(w, "    Model Year\t%d\n", v.Year)
	fmt.Fprintf(w, "    VIN\t%s\n", v.Vin)
}

// FormatPid renders a canonical personal number as YYYYMMDD-XXXX. Anything
// else is returned unchanged.
func FormatPid(pid string) string {
	if len(pid) != 12 {
		return pid
	}
	return pid[:8] + "-" + pid[8:]
}

// FormatSEK renders whole kronor with space-grouped thousands, e.g. "1 234 kr".
func FormatSEK(m insurance.Money) string {
	digits := m.Round(0).Abs().StringFixed(0)
	var b strings.Builder
	if m.Round(0).IsNegative() {
		b.WriteByte('-')
	}
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	b.WriteString(" kr")
	return b.String()
}
