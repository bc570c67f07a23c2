package league

// Catalog is the read-only registry of supported leagues. It is built once at
// process start and never mutated afterwards.
type Catalog struct {
	leagues []League
	bySlug  map[string]int
}

var defaultLeagues = []League{
	{Name: "KBO", Slug: "kbo", Sport: SportBaseball, Country: "South Korea"},
	{Name: "MLB", Slug: "mlb", Sport: SportBaseball, Country: "USA"},
	{Name: "NBA", Slug: "nba", Sport: SportBasketball, Country: "USA"},
	{Name: "EPL", Slug: "epl", Sport: SportSoccer, Country: "England"},
	{Name: "NFL", Slug: "nfl", Sport: SportFootball, Country: "USA"},
	{Name: "NHL", Slug: "nhl", Sport: SportHockey, Country: "USA/Canada"},
	{Name: "UCL", Slug: "ucl", Sport: SportSoccer, Country: "Europe"},
	{Name: "IPL", Slug: "ipl", Sport: SportCricket, Country: "India"},
	{Name: "K-LEAGUE", Slug: "k-league", Sport: SportSoccer, Country: "South Korea"},
	{Name: "SERIE A", Slug: "serie-a", Sport: SportSoccer, Country: "Italy"},
	{Name: "LA LIGA", Slug: "la-liga", Sport: SportSoccer, Country: "Spain"},
	{Name: "BUNDESLIGA", Slug: "bundesliga", Sport: SportSoccer, Country: "Germany"},
	{Name: "KBL", Slug: "kbl", Sport: SportBasketball, Country: "South Korea"},
}

var defaultCatalog = NewCatalog(defaultLeagues)

// DefaultCatalog returns the built-in league table.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// NewCatalog copies leagues into a new catalog. Invalid entries and duplicate
// slugs are skipped; the first occurrence wins.
func NewCatalog(leagues []League) *Catalog {
	c := &Catalog{
		leagues: make([]League, 0, len(leagues)),
		bySlug:  make(map[string]int, len(leagues)),
	}
	for _, l := range leagues {
		l.Slug = NormalizeSlug(l.Slug)
		if l.Validate() != nil {
			continue
		}
		if _, exists := c.bySlug[l.Slug]; exists {
			continue
		}
		c.bySlug[l.Slug] = len(c.leagues)
		c.leagues = append(c.leagues, l)
	}
	return c
}

// List returns the leagues in catalog order.
func (c *Catalog) List() []League {
	return append([]League(nil), c.leagues...)
}

func (c *Catalog) Lookup(slug string) (League, bool) {
	idx, ok := c.bySlug[NormalizeSlug(slug)]
	if !ok {
		return League{}, false
	}
	return c.leagues[idx], true
}

func (c *Catalog) BySport(sport Sport) []League {
	out := make([]League, 0)
	for _, l := range c.leagues {
		if l.Sport == sport {
			out = append(out, l)
		}
	}
	return out
}

// Position reports the catalog index of slug, or -1.
func (c *Catalog) Position(slug string) int {
	idx, ok := c.bySlug[NormalizeSlug(slug)]
	if !ok {
		return -1
	}
	return idx
}

func (c *Catalog) Len() int {
	return len(c.leagues)
}
