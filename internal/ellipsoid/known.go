package ellipsoid

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownEllipsoid is returned by lookups for names that are not registered.
var ErrUnknownEllipsoid = errors.New("ellipsoid: unknown ellipsoid")

// Well-known reference ellipsoids.
var (
	// WGS84 carries 1/f rounded to 298.2572236, not 298.257223563.
	WGS84          = MustNew(7030, 6378137, 298.2572236, 0, "WGS 84")
	GRS80          = MustNew(7019, 6378137, 298.257222101, 0, "GRS 1980")
	Clarke1866     = MustNew(7008, 6378206.4, 0, 6356583.8, "Clarke 1866")
	Bessel1841     = MustNew(7004, 6377397.155, 299.1528128, 0, "Bessel 1841")
	Airy1830       = MustNew(7001, 6377563.396, 0, 6356256.910, "Airy 1830")
	International  = MustNew(7022, 6378388, 297, 0, "International 1924")
	AuthalicSphere = MustNew(7035, 6371007, 0, 6371007, "Authalic sphere")
)

var known = []*Ellipsoid{WGS84, GRS80, Clarke1866, Bessel1841, Airy1830, International, AuthalicSphere}

// aliases map short proj-style names onto the table above.
var aliases = map[string]*Ellipsoid{
	"wgs84":  WGS84,
	"grs80":  GRS80,
	"clrk66": Clarke1866,
	"bessel": Bessel1841,
	"airy":   Airy1830,
	"intl":   International,
	"sphere": AuthalicSphere,
}

// Lookup finds a well-known ellipsoid by display name or short alias,
// ignoring case and surrounding space.
func Lookup(name string) (*Ellipsoid, error) {
	return defaultCatalog.Lookup(name)
}

// Catalog is a name-indexed set of ellipsoids. Build it once and share it;
// it is not safe to Add concurrently with lookups.
type Catalog struct {
	byName map[string]*Ellipsoid
	byEPSG map[int]*Ellipsoid
}

var defaultCatalog = NewCatalog()

// NewCatalog returns a catalog seeded with the well-known ellipsoids.
func NewCatalog() *Catalog {
	c := &Catalog{
		byName: make(map[string]*Ellipsoid),
		byEPSG: make(map[int]*Ellipsoid),
	}
	for _, el := range known {
		if err := c.Add(el); err != nil {
			panic(err)
		}
	}
	for alias, el := range aliases {
		c.byName[alias] = el
	}
	return c
}

// Add registers el under its name (and EPSG code when it has one).
// Replacing an existing name is an error.
func (c *Catalog) Add(el *Ellipsoid) error {
	key := normalizeName(el.Name())
	if key == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidDefinition)
	}
	if _, ok := c.byName[key]; ok {
		return fmt.Errorf("ellipsoid: %q already registered", el.Name())
	}
	c.byName[key] = el
	if el.EPSG() != UnknownEPSG {
		c.byEPSG[el.EPSG()] = el
	}
	return nil
}

// Lookup finds an ellipsoid by name or alias.
func (c *Catalog) Lookup(name string) (*Ellipsoid, error) {
	if el, ok := c.byName[normalizeName(name)]; ok {
		return el, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEllipsoid, name)
}

// ForEPSG finds an ellipsoid by its EPSG ellipsoid code.
func (c *Catalog) ForEPSG(code int) (*Ellipsoid, error) {
	if el, ok := c.byEPSG[code]; ok {
		return el, nil
	}
	return nil, fmt.Errorf("%w: EPSG:%d", ErrUnknownEllipsoid, code)
}

// Names returns the display names of all registered ellipsoids, sorted.
func (c *Catalog) Names() []string {
	seen := make(map[*Ellipsoid]bool, len(c.byName))
	var names []string
	for _, el := range c.byName {
		if seen[el] {
			continue
		}
		seen[el] = true
		names = append(names, el.Name())
	}
	sort.Strings(names)
	return names
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
