package employee

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/bxcodec/faker/v4"
)

const (
	DefaultRosterSize     = 6
	DefaultAttendanceDays = 30
	DefaultPaymentMonths  = 6
)

var paymentModes = []PaymentMode{PaymentBankTransfer, PaymentCash, PaymentCheck, PaymentDigitalWallet}

// Generator builds a synthetic roster. Content is random but every roster has the
// same shape: sequential ids, one attendance record per day newest first and
// payments sorted newest first.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// NewGenerator uses rng for every random draw except faker names, so a seeded
// rng gives reproducible statuses, times and amounts. Nil arguments fall back to
// an unseeded source and time.Now.
func NewGenerator(rng *rand.Rand, now func() time.Time) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if now == nil {
		now = time.Now
	}
	return &Generator{rng: rng, now: now}
}

func (g *Generator) GenerateRoster(count int) []Employee {
	return g.Generate(count, DefaultAttendanceDays, DefaultPaymentMonths)
}

// Generate returns exactly count employees with ids "1".."count", each with a
// days long attendance window ending today and a months long payment history.
func (g *Generator) Generate(count, days, months int) []Employee {
	if count <= 0 {
		return []Employee{}
	}

	now := g.now()
	out := make([]Employee, 0, count)
	for i := 0; i < count; i++ {
		var p profile
		if i < len(sampleProfiles) {
			p = sampleProfiles[i]
		} else {
			p = g.randomProfile(now)
		}
		out = append(out, g.build(i+1, p, now, days, months))
	}
	return out
}

func (g *Generator) build(seq int, p profile, now time.Time, days, months int) Employee {
	joinDate := p.JoinDate
	if today := now.Format(DateLayout); joinDate > today {
		joinDate = today
	}
	salary := p.Salary

	e := Employee{
		ID:               strconv.Itoa(seq),
		EmployeeID:       fmt.Sprintf("EMP-%06d", seq),
		Name:             p.Name,
		Email:            p.Email,
		Phone:            p.Phone,
		Role:             p.Role,
		Department:       p.Department,
		JoinDate:         joinDate,
		Status:           p.Status,
		Address:          p.Address,
		EmergencyContact: p.EmergencyContact,
		Salary:           &salary,
		BirthDate:        now.AddDate(-(20 + g.rng.IntN(40)), -g.rng.IntN(12), -g.rng.IntN(28)).Format(DateLayout),
		Gender:           genders[g.rng.IntN(len(genders))],
		Education:        educations[g.rng.IntN(len(educations))],
		Skills:           g.pickSkills(p.Department),
	}
	e.Attendance = g.attendance(now, days, g.reliability(p.Status))
	e.Payments = g.payments(now, months, salary)
	return e
}

func (g *Generator) randomProfile(now time.Time) profile {
	first, last := faker.FirstName(), faker.LastName()
	dept := departments[g.rng.IntN(len(departments))]
	roles := departmentRoles[dept]

	return profile{
		Name:       first + " " + last,
		Email:      strings.ToLower(first+"."+last) + "@example.com",
		Phone:      faker.Phonenumber(),
		Role:       roles[g.rng.IntN(len(roles))],
		Department: dept,
		JoinDate:   now.AddDate(0, 0, -g.rng.IntN(5*365)).Format(DateLayout),
		Status:     g.randomStatus(),
		Address:    fmt.Sprintf("%d %s, City, State", 100+g.rng.IntN(900), streets[g.rng.IntN(len(streets))]),
		EmergencyContact: fmt.Sprintf("%s %s (%s) - %s",
			faker.FirstName(), last, relations[g.rng.IntN(len(relations))], faker.Phonenumber()),
		Salary: float64(30000 + 1000*g.rng.IntN(40)),
	}
}

func (g *Generator) randomStatus() Status {
	switch p := g.rng.Float64(); {
	case p < 0.8:
		return StatusActive
	case p < 0.9:
		return StatusOnLeave
	default:
		return StatusInactive
	}
}

func (g *Generator) pickSkills(dept string) []string {
	pool := skillsByDept[dept]
	if len(pool) == 0 {
		return nil
	}
	n := 1 + g.rng.IntN(len(pool))
	skills := make([]string, 0, n)
	for _, i := range g.rng.Perm(len(pool))[:n] {
		skills = append(skills, pool[i])
	}
	return skills
}

// reliability is the chance of a plain Present day: [0.75, 1.0) for active
// staff, [0.5, 0.75) otherwise.
func (g *Generator) reliability(status Status) float64 {
	if status == StatusActive {
		return 0.75 + g.rng.Float64()*0.25
	}
	return 0.5 + g.rng.Float64()*0.25
}

func (g *Generator) attendanceStatus(reliability float64) AttendanceStatus {
	p := g.rng.Float64()
	if p < reliability {
		return AttendancePresent
	}

	switch rest := (p - reliability) / (1 - reliability); {
	case rest < 0.25:
		return AttendanceHalfDay
	case rest < 0.6:
		return AttendanceLate
	default:
		return AttendanceAbsent
	}
}

func (g *Generator) attendance(now time.Time, days int, reliability float64) []AttendanceRecord {
	records := make([]AttendanceRecord, 0, max(days, 0))
	for i := 0; i < days; i++ {
		r := AttendanceRecord{
			Date:   now.AddDate(0, 0, -i).Format(DateLayout),
			Status: g.attendanceStatus(reliability),
		}
		if r.Status != AttendanceAbsent {
			r.CheckInTime = fmt.Sprintf("%02d:%02d", 8+g.rng.IntN(2), g.rng.IntN(60))
			r.CheckOutTime = fmt.Sprintf("%02d:%02d", 17+g.rng.IntN(3), g.rng.IntN(60))
		}
		records = append(records, r)
	}
	return records
}

func (g *Generator) payments(now time.Time, months int, salary float64) []PaymentRecord {
	records := make([]PaymentRecord, 0, max(months, 0))
	used := make(map[string]struct{}, months)
	base := roundCents(salary / 12)

	for i := 0; i < months; i++ {
		paidOn := monthsAgo(now, i)
		from := monthsAgo(now, i+1)

		bonus := float64(g.rng.IntN(500))
		hours := float64(g.rng.IntN(11))
		rate := float64(15 + g.rng.IntN(16))
		amount := roundCents(base + bonus + hours*rate)

		status := PaymentCompleted
		if g.rng.Float64() < 0.1 {
			status = PaymentPending
		}

		records = append(records, PaymentRecord{
			ID:            uniquePaymentID(g.rng, used),
			Date:          paidOn.Format(DateLayout),
			Amount:        amount,
			PaymentMode:   paymentModes[g.rng.IntN(len(paymentModes))],
			Status:        status,
			Description:   "Monthly salary",
			Period:        &Period{From: from.Format(DateLayout), To: paidOn.Format(DateLayout)},
			TaxDeduction:  floatPtr(roundCents(amount * 0.1)),
			BonusAmount:   floatPtr(bonus),
			OvertimeHours: floatPtr(hours),
			OvertimeRate:  floatPtr(rate),
		})
	}

	SortPaymentsNewestFirst(records)
	return records
}

// SortPaymentsNewestFirst orders payments by date descending. Dates are
// DateLayout strings, so string order is calendar order.
func SortPaymentsNewestFirst(payments []PaymentRecord) {
	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].Date > payments[j].Date
	})
}

// uniquePaymentID draws PAY-NNNNN ids until one is not in used.
func uniquePaymentID(rng *rand.Rand, used map[string]struct{}) string {
	for {
		id := fmt.Sprintf("PAY-%05d", rng.IntN(100000))
		if _, taken := used[id]; !taken {
			used[id] = struct{}{}
			return id
		}
	}
}

// monthsAgo steps back n calendar months, clamping the day to the target month's length.
func monthsAgo(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m-time.Month(n), 1, 0, 0, 0, 0, t.Location())
	if last := first.AddDate(0, 1, -1).Day(); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, t.Location())
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
