// Command rrule-next prints the next occurrence of an RRULE after a given
// instant, exercising schedule.NextRunAfter the same way a robfig/cron
// based scheduler would.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/rrulekit/rrule"
	"github.com/rrulekit/rrule/schedule"
)

func main() {
	freqFlag := flag.String("freq", "DAILY", "RFC 5545 FREQ (SECONDLY|MINUTELY|HOURLY|DAILY|WEEKLY|MONTHLY|YEARLY)")
	intervalFlag := flag.Int("interval", 1, "RRULE INTERVAL")
	dtstartFlag := flag.String("dtstart", "", "DTSTART in RFC3339 (defaults to now, UTC)")
	afterFlag := flag.String("after", "", "compute the first occurrence after this RFC3339 instant (defaults to dtstart)")
	flag.Parse()

	freq, err := rrule.ParseFrequency(*freqFlag)
	if err != nil {
		log.Fatalf("rrule-next: %v", err)
	}

	dtstart := time.Now().UTC()
	if *dtstartFlag != "" {
		dtstart, err = time.Parse(time.RFC3339, *dtstartFlag)
		if err != nil {
			log.Fatalf("rrule-next: invalid -dtstart: %v", err)
		}
	}

	after := dtstart
	if *afterFlag != "" {
		after, err = time.Parse(time.RFC3339, *afterFlag)
		if err != nil {
			log.Fatalf("rrule-next: invalid -after: %v", err)
		}
	}

	rule, err := rrule.NewRule(rrule.ROption{
		Freq:     freq,
		Interval: *intervalFlag,
		Dtstart:  rrule.NewUTCDateTime(dtstart.Year(), int(dtstart.Month()), dtstart.Day(), dtstart.Hour(), dtstart.Minute(), dtstart.Second()),
	})
	if err != nil {
		log.Fatalf("rrule-next: %v", err)
	}

	next, ok := schedule.NextRunAfter(rule, after)
	if !ok {
		fmt.Println("no further occurrences")
		os.Exit(1)
	}

	fmt.Println(next.Format(time.RFC3339))
}
