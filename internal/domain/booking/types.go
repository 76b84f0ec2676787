package booking

type TripType string

const (
	TripHotel   TripType = "hotel"
	TripFlight  TripType = "flight"
	TripTrain   TripType = "train"
	TripBus     TripType = "bus"
	TripPackage TripType = "package"
)

func (t TripType) String() string {
	return string(t)
}

func (t TripType) IsValid() bool {
	switch t {
	case TripHotel, TripFlight, TripTrain, TripBus, TripPackage:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusConfirmed Status = "confirmed"
)

func (s Status) String() string {
	return string(s)
}
