// Package maprender turns the map markers into what each client platform draws.
// Web clients receive a GeoJSON FeatureCollection, native clients a region and a pin list.
package maprender

import (
	"strconv"
	"strings"

	"adresses/internal/domain/entity"
	"adresses/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Target selects the renderer.
type Target string

const (
	TargetWeb    Target = "web"
	TargetNative Target = "native"
)

// Marker colours.
const (
	ColorUser   = "red"
	ColorMine   = "green"
	ColorOthers = "blue"
)

// Marker kinds, carried as a feature property.
const (
	KindUser   = "user"
	KindMine   = "mine"
	KindOthers = "public"
)

const (
	// Region span of the native map around its centre.
	nativeDelta = 0.05
	webZoom     = 14

	userTitle          = "Vous"
	mineFallbackTitle  = "Mon adresse"
	otherFallbackTitle = "Adresse publique"
)

// DefaultCenter is used when the user position is unknown.
var DefaultCenter = entity.Location{Latitude: 48.8566, Longitude: 2.3522}

// ErrUnknownTarget is returned by New for a target other than web or native.
var ErrUnknownTarget = errors.New("unknown map target")

// Scene is everything drawn on the map.
type Scene struct {
	User   *entity.Location // Nil when the position is unknown.
	Mine   []*entity.Address
	Others []*entity.Address
}

func (s *Scene) center() entity.Location {
	if s.User != nil {
		return *s.User
	}

	return DefaultCenter
}

// Renderer renders a scene for one platform. The result is JSON-encodable.
type Renderer interface {
	Target() Target
	Render(scene *Scene) any
}

// New returns the renderer for target. An empty target means web.
func New(target string) (Renderer, error) {
	switch Target(strings.ToLower(strings.TrimSpace(target))) {
	case "", TargetWeb:
		return webRenderer{}, nil
	case TargetNative:
		return nativeRenderer{}, nil
	default:
		return nil, errors.Wrap(ErrUnknownTarget, target)
	}
}

type marker struct {
	id    string
	title string
	kind  string
	color string
	loc   entity.Location
}

// markers lists the user first, then the user's own addresses, then the others.
func markers(scene *Scene) []marker {
	out := make([]marker, 0, len(scene.Mine)+len(scene.Others)+1)
	if scene.User != nil {
		out = append(out, marker{title: userTitle, kind: KindUser, color: ColorUser, loc: *scene.User})
	}
	for _, a := range scene.Mine {
		out = append(out, addressMarker(a, KindMine, ColorMine, mineFallbackTitle))
	}
	for _, a := range scene.Others {
		out = append(out, addressMarker(a, KindOthers, ColorOthers, otherFallbackTitle))
	}

	return out
}

func addressMarker(a *entity.Address, kind, color, fallback string) marker {
	title := strings.TrimSpace(a.Title)
	if title == "" {
		title = fallback
	}

	return marker{id: a.ID, title: title, kind: kind, color: color, loc: a.Location}
}

type webRenderer struct{}

func (webRenderer) Target() Target { return TargetWeb }

// Render returns a *geojson.FeatureCollection with the centre and zoom as foreign members.
func (webRenderer) Render(scene *Scene) any {
	fc := geojson.NewFeatureCollection()

	var points orb.MultiPoint
	for _, m := range markers(scene) {
		f := geojson.NewFeature(m.loc.Point())
		if m.id != "" {
			f.ID = m.id
		}
		f.Properties["title"] = m.title
		f.Properties["kind"] = m.kind
		f.Properties["marker-color"] = m.color
		fc.Append(f)
		points = append(points, m.loc.Point())
	}

	if len(points) > 0 {
		fc.BBox = geojson.NewBBox(points.Bound())
	}

	center := scene.center()
	fc.ExtraMembers = geojson.Properties{
		"center": []float64{center.Longitude, center.Latitude},
		"zoom":   webZoom,
	}

	return fc
}

// Region is the visible area of a native map.
type Region struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	LatitudeDelta  float64 `json:"latitude_delta"`
	LongitudeDelta float64 `json:"longitude_delta"`
}

// Pin is one native marker.
type Pin struct {
	ID        string  `json:"id,omitempty"`
	Title     string  `json:"title"`
	Kind      string  `json:"kind"`
	Color     string  `json:"color"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NativeMap is the native rendition of a scene.
type NativeMap struct {
	Region Region `json:"region"`
	Pins   []Pin  `json:"pins"`
}

type nativeRenderer struct{}

func (nativeRenderer) Target() Target { return TargetNative }

// Render returns a *NativeMap centred on the user.
func (nativeRenderer) Render(scene *Scene) any {
	center := scene.center()
	out := &NativeMap{
		Region: Region{
			Latitude:       center.Latitude,
			Longitude:      center.Longitude,
			LatitudeDelta:  nativeDelta,
			LongitudeDelta: nativeDelta,
		},
	}

	ms := markers(scene)
	out.Pins = make([]Pin, 0, len(ms))
	for _, m := range ms {
		out.Pins = append(out.Pins, Pin{
			ID:        m.id,
			Title:     m.title,
			Kind:      m.kind,
			Color:     m.color,
			Latitude:  m.loc.Latitude,
			Longitude: m.loc.Longitude,
		})
	}

	return out
}

// ParseBound parses "minLng,minLat,maxLng,maxLat". An empty string means no bound.
func ParseBound(raw string) (*orb.Bound, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return nil, errors.Errorf("bbox needs 4 values, got %d", len(parts))
	}

	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "bbox value %d", i)
		}
		v[i] = f
	}

	minLoc := entity.Location{Longitude: v[0], Latitude: v[1]}
	maxLoc := entity.Location{Longitude: v[2], Latitude: v[3]}
	if !minLoc.Valid() || !maxLoc.Valid() || v[0] > v[2] || v[1] > v[3] {
		return nil, errors.Errorf("bbox %q is out of range", raw)
	}

	bound := orb.Bound{Min: minLoc.Point(), Max: maxLoc.Point()}

	return &bound, nil
}
