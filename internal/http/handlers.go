// README: Handlers for the car-pooling API: cars, journey, dropoff, locate.
package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"carpool/internal/modules/fleet"
)

// minCarSeats is the smallest car the API accepts on PUT /cars. Groups may be
// as small as one person, but the fleet itself only carries 4..6 seaters.
const minCarSeats = 4

type carPayload struct {
	ID    int `json:"id"`
	Seats int `json:"seats"`
}

type journeyPayload struct {
	ID     int `json:"id"`
	People int `json:"people"`
}

func (s *Server) HandleStatus(c *gin.Context) {
	c.Status(http.StatusOK)
}

// HandleLoadCars replaces the fleet and resets every group and journey.
func (s *Server) HandleLoadCars(c *gin.Context) {
	var payload []carPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	cars := make([]fleet.Car, 0, len(payload))
	for _, p := range payload {
		if p.ID <= 0 || p.Seats < minCarSeats || p.Seats > fleet.MaxSeats {
			writeError(c, http.StatusBadRequest, "invalid car")
			return
		}
		cars = append(cars, fleet.Car{ID: p.ID, Seats: p.Seats})
	}

	s.pooling.Reset(cars)
	c.Status(http.StatusOK)
}

// HandleJourney registers a group asking to travel.
func (s *Server) HandleJourney(c *gin.Context) {
	var req journeyPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.ID <= 0 || req.People < 1 || req.People > fleet.MaxSeats {
		writeError(c, http.StatusBadRequest, "invalid journey")
		return
	}

	if err := s.pooling.RequestJourney(req.ID, req.People); err != nil {
		writePoolingError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// HandleDropoff unregisters a group, riding or waiting.
func (s *Server) HandleDropoff(c *gin.Context) {
	groupID, ok := formGroupID(c)
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid group id")
		return
	}

	if err := s.pooling.Dropoff(groupID); err != nil {
		writePoolingError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// HandleLocate returns the car a group rides in, 204 while it waits.
func (s *Server) HandleLocate(c *gin.Context) {
	groupID, ok := formGroupID(c)
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid group id")
		return
	}

	car, err := s.pooling.Locate(groupID)
	if err != nil {
		writePoolingError(c, err)
		return
	}
	if car == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, car)
}

// formGroupID reads the ID field of a form-encoded body.
func formGroupID(c *gin.Context) (int, bool) {
	v := c.PostForm("ID")
	if v == "" {
		return 0, false
	}
	id, err := strconv.Atoi(v)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
