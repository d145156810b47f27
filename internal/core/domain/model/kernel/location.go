package kernel

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"sendit/internal/pkg/errs"
	"sendit/internal/pkg/guard"
)

const (
	// MinLatitude is the southernmost valid latitude in degrees.
	MinLatitude = -90.0
	// MaxLatitude is the northernmost valid latitude in degrees.
	MaxLatitude = 90.0
	// MinLongitude is the westernmost valid longitude in degrees.
	MinLongitude = -180.0
	// MaxLongitude is the easternmost valid longitude in degrees.
	MaxLongitude = 180.0

	// EarthRadiusKm is the mean Earth radius used for great-circle distances.
	EarthRadiusKm = 6371.0

	// AverageTransitSpeedKmh is the assumed constant courier speed used to
	// derive transit durations from distances.
	AverageTransitSpeedKmh = 50.0
)

// ErrLocationIsNotConstructed is returned when attempting to use an improperly
// initialized Location. Locations must be created via NewLocation.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location is an immutable value object describing a geographic point together
// with its postal address. Coordinates are validated against the WGS84 ranges;
// all address fields must be non-empty after trimming. A coordinate of exactly
// 0.0 is valid (equator and prime meridian are real places).
//
// The zero value of Location is invalid and fails Validate - use the
// constructor to create instances.
//
// Example:
//
//	loc, err := kernel.NewLocation(40.7128, -74.0060,
//	    "290 Broadway", "New York", "NY", "USA", "10007")
//	if err != nil {
//	    // handle validation error
//	}
type Location struct { //nolint:recvcheck //using for validation
	latitude   float64
	longitude  float64
	address    string
	city       string
	state      string
	country    string
	postalCode string

	guard guard.ConstructorGuard
}

// NewLocation creates a Location with validated coordinates and address fields.
// Latitude must be within [MinLatitude..MaxLatitude], longitude within
// [MinLongitude..MaxLongitude], both finite; every address field must be
// non-empty after trimming whitespace. All violations are reported together
// via errors.Join, each naming the offending field.
func NewLocation(
	latitude float64,
	longitude float64,
	address string,
	city string,
	state string,
	country string,
	postalCode string,
) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		loc.setLatitude(latitude),
		loc.setLongitude(longitude),
		loc.setAddress(address),
		loc.setCity(city),
		loc.setState(state),
		loc.setCountry(country),
		loc.setPostalCode(postalCode),
	); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate checks if the Location was properly constructed.
// The zero value fails with ErrLocationIsNotConstructed.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Latitude returns the latitude in degrees.
func (l Location) Latitude() float64 {
	return l.latitude
}

// Longitude returns the longitude in degrees.
func (l Location) Longitude() float64 {
	return l.longitude
}

// Address returns the street address.
func (l Location) Address() string {
	return l.address
}

// City returns the city name.
func (l Location) City() string {
	return l.city
}

// State returns the state or region name.
func (l Location) State() string {
	return l.state
}

// Country returns the country name.
func (l Location) Country() string {
	return l.country
}

// PostalCode returns the postal code.
func (l Location) PostalCode() string {
	return l.postalCode
}

// String returns a human-readable representation for logging and debugging.
func (l Location) String() string {
	return fmt.Sprintf("Location(%.4f,%.4f %s, %s)", l.latitude, l.longitude, l.address, l.city)
}

// IsEqual compares two locations field by field.
// Both locations must be properly constructed for the comparison to succeed.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l == other, nil
}

// DistanceKmTo calculates the great-circle (Haversine) distance to another
// location in kilometers. The result is symmetric and zero for identical
// coordinates. Both locations must be properly constructed.
//
// Example:
//
//	nyc, _ := kernel.NewLocation(40.7128, -74.0060, ...)
//	la, _ := kernel.NewLocation(34.0522, -118.2437, ...)
//	km, _ := nyc.DistanceKmTo(la) // ~3936 km
func (l Location) DistanceKmTo(other Location) (float64, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := degreesToRadians(l.latitude)
	lat2 := degreesToRadians(other.latitude)
	dLat := degreesToRadians(other.latitude - l.latitude)
	dLon := degreesToRadians(other.longitude - l.longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c, nil
}

// EtaMinutes derives a transit duration in whole minutes from a distance,
// assuming a constant average speed of AverageTransitSpeedKmh. The result is
// rounded up; a distance of zero yields zero.
func EtaMinutes(distanceKm float64) int {
	if distanceKm <= 0 {
		return 0
	}
	return int(math.Ceil(distanceKm / AverageTransitSpeedKmh * 60))
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// setLatitude sets the latitude with validation.
// Note: private setters use pointer receivers to enable self-encapsulated
// validation during construction, while public methods use value receivers.
func (l *Location) setLatitude(latitude float64) error {
	if math.IsNaN(latitude) || math.IsInf(latitude, 0) {
		return errs.NewValueIsInvalidError("latitude")
	}
	if latitude < MinLatitude || latitude > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, MinLatitude, MaxLatitude)
	}

	l.latitude = latitude
	return nil
}

// setLongitude sets the longitude with validation.
func (l *Location) setLongitude(longitude float64) error {
	if math.IsNaN(longitude) || math.IsInf(longitude, 0) {
		return errs.NewValueIsInvalidError("longitude")
	}
	if longitude < MinLongitude || longitude > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, MinLongitude, MaxLongitude)
	}

	l.longitude = longitude
	return nil
}

func (l *Location) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}

	l.address = address
	return nil
}

func (l *Location) setCity(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}

	l.city = city
	return nil
}

func (l *Location) setState(state string) error {
	state = strings.TrimSpace(state)
	if state == "" {
		return errs.NewValueIsRequiredError("state")
	}

	l.state = state
	return nil
}

func (l *Location) setCountry(country string) error {
	country = strings.TrimSpace(country)
	if country == "" {
		return errs.NewValueIsRequiredError("country")
	}

	l.country = country
	return nil
}

func (l *Location) setPostalCode(postalCode string) error {
	postalCode = strings.TrimSpace(postalCode)
	if postalCode == "" {
		return errs.NewValueIsRequiredError("postalCode")
	}

	l.postalCode = postalCode
	return nil
}
