// README: Car model and the seat-capacity domain for the fleet pool.
package fleet

// MaxSeats is the largest car capacity the pool indexes. Buckets cover
// 0..MaxSeats available seats.
const MaxSeats = 6

// Car is the public view of a vehicle: identity and total capacity.
// Available seats are never exposed outside the pool.
type Car struct {
	ID    int `json:"id"`
	Seats int `json:"seats"`
}

// car is the pool's internal record, including mutable availability.
type car struct {
	id        int
	seats     int
	available int
}
