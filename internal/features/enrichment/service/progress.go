package service

import "parcel-ledger/internal/features/enrichment/domain"

// progressReporter emits the visited-row percentage roughly every 1% of rows
// and on the last row. Per-row values stop at 99; only a saved run reaches 100.
type progressReporter struct {
	total   int
	step    int
	visited int
	last    int
	emit    func(domain.Event)
}

func newProgressReporter(total int, emit func(domain.Event)) *progressReporter {
	return &progressReporter{
		total: total,
		step:  max(1, total/100),
		last:  -1,
		emit:  emit,
	}
}

// visit records one processed row.
func (p *progressReporter) visit() {
	p.visited++
	if p.visited%p.step != 0 && p.visited != p.total {
		return
	}
	pct := min(p.visited*100/p.total, 99)
	if pct <= p.last {
		return
	}
	p.last = pct
	p.emit(domain.ProgressEvent(pct))
}

// complete emits the terminal 100%.
func (p *progressReporter) complete() {
	p.last = 100
	p.emit(domain.ProgressEvent(100))
}
