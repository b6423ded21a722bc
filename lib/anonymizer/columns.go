package anonymizer

const (
	GenderColumn           = "Gender"
	AirportContinentColumn = "Airport Continent"
	DepartureDateColumn    = "Departure Date"
)

// QuasiIdentifiers are the columns that together could re-identify a passenger. Only [DepartureDateColumn] is ever rewritten.
var QuasiIdentifiers = []string{GenderColumn, AirportContinentColumn, DepartureDateColumn}

// SuppressionSet are directly identifying columns, they are dropped unconditionally.
var SuppressionSet = []string{
	"Passenger ID",
	"First Name",
	"Last Name",
	"Nationality",
	"Airport Name",
	"Airport Country Code",
	"Country Name",
	"Continents",
	"Pilot Name",
}
