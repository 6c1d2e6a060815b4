// Package zmanim computes the halachic day times shown on the times card.
//
// The solar base (sunrise/sunset) comes from go-sunrise; the halachic
// offsets are derived from it. Dawn and the MGA day use 72 fixed minutes,
// the shma and tfilla deadlines use proportional hours (GRA from
// sunrise-sunset, MGA from dawn-dusk), and nightfall is shown 36 minutes
// after sunset.
package zmanim

import (
	"fmt"
	"time"

	"github.com/hebcal/hebcal-go/dafyomi"
	"github.com/hebcal/hdate"
	"github.com/nathan-osman/go-sunrise"
)

// Times is one day's set of halachic times plus the daf yomi reference.
// The struct is always complete: a computation fault yields no Times at
// all, never a partial record.
type Times struct {
	Alot      time.Time // dawn, 72 minutes before sunrise
	Sunrise   time.Time
	ShmaMGA   time.Time // latest shma, Magen Avraham
	ShmaGRA   time.Time // latest shma, Vilna Gaon
	TfillaMGA time.Time
	TfillaGRA time.Time
	Chatzot   time.Time // midday
	Sunset    time.Time
	Tzeit     time.Time // nightfall
	DafYomi   string    // daily-learning reference, empty when unavailable
}

// Compute returns the times for the calendar day containing now at the
// given coordinates, in now's location.
func Compute(now time.Time, lat, lon float64) (Times, error) {
	rise, set := sunrise.SunriseSunset(lat, lon, now.Year(), now.Month(), now.Day())
	if rise.IsZero() || set.IsZero() {
		return Times{}, fmt.Errorf("no sunrise/sunset at %.4f,%.4f on %s", lat, lon, now.Format("2006-01-02"))
	}
	rise = rise.In(now.Location())
	set = set.In(now.Location())

	alot := rise.Add(-72 * time.Minute)
	dusk := set.Add(72 * time.Minute)

	hourGRA := set.Sub(rise) / 12
	hourMGA := dusk.Sub(alot) / 12

	t := Times{
		Alot:      alot,
		Sunrise:   rise,
		ShmaMGA:   alot.Add(3 * hourMGA),
		ShmaGRA:   rise.Add(3 * hourGRA),
		TfillaMGA: alot.Add(4 * hourMGA),
		TfillaGRA: rise.Add(4 * hourGRA),
		Chatzot:   rise.Add(6 * hourGRA),
		Sunset:    set,
		Tzeit:     set.Add(36 * time.Minute),
	}

	if daf, err := dafyomi.New(hdate.FromTime(now)); err == nil {
		t.DafYomi = daf.String()
	}
	return t, nil
}
