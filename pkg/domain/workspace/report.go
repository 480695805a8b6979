package workspace

// SchedulePayload is everything the external scheduling host needs to
// install one recurring reflection job. The prompt is an opaque blob.
type SchedulePayload struct {
	Cron     string `json:"cron"`
	Timezone string `json:"timezone"`
	Prompt   string `json:"prompt"`
}

// ScheduleSet holds the daily and weekly payloads.
type ScheduleSet struct {
	Daily  SchedulePayload `json:"daily"`
	Weekly SchedulePayload `json:"weekly"`
}

// InitReport describes what one initialization run did, or with dry-run
// set, what it would have done. It is built fresh per call and never
// persisted.
type InitReport struct {
	Root       string       `json:"root"`
	Timezone   string       `json:"timezone"`
	DailyTime  string       `json:"dailyTime"`
	WeeklyTime string       `json:"weeklyTime"`
	DryRun     bool         `json:"dryRun"`
	Created    []string     `json:"created"`
	Existed    []string     `json:"existed"`
	Schedule   *ScheduleSet `json:"schedule,omitempty"`
}

// ReportBuilder accumulates initializer results into an InitReport.
// It carries no logic beyond assembly.
type ReportBuilder struct {
	report InitReport
}

func NewReportBuilder(root, timezone, dailyTime, weeklyTime string, dryRun bool) *ReportBuilder {
	return &ReportBuilder{report: InitReport{
		Root:       root,
		Timezone:   timezone,
		DailyTime:  dailyTime,
		WeeklyTime: weeklyTime,
		DryRun:     dryRun,
		Created:    []string{},
		Existed:    []string{},
	}}
}

// Created records a path that was (or would be) created this run.
func (b *ReportBuilder) Created(path string) {
	b.report.Created = append(b.report.Created, path)
}

// Existed records a path that was already present.
func (b *ReportBuilder) Existed(path string) {
	b.report.Existed = append(b.report.Existed, path)
}

// Schedule attaches the derived schedule payloads.
func (b *ReportBuilder) Schedule(set *ScheduleSet) {
	b.report.Schedule = set
}

func (b *ReportBuilder) Build() *InitReport {
	report := b.report
	return &report
}
