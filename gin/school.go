package gin

import (
	"net/http"
	"strings"

	"github.com/dbsapi/dbsapi"
	"github.com/gin-gonic/gin"
)

// registerSchoolRoutes is a helper function for registering all school routes.
func (s *Server) registerSchoolRoutes(r gin.IRoutes) {
	routes := map[string]gin.HandlerFunc{
		"/":                   s.handleHome,
		"/birthdays":          s.handleBirthdays,
		"/notices":            s.handleNotices,
		"/competitionResults": s.handleCompetitionResults,
		"/housePoints":        s.handleHousePoints,
		"/eventLinks":         s.handleEventLinks,
		"/eventImages":        s.handleEventImages,
	}
	for path, h := range routes {
		r.GET(path, h)
		r.HEAD(path, h)
	}
}

func (s *Server) handleHome(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{
		"message": "Welcome to the Don Bosco School API!",
		"title":   "DBS API",
		"author":  "Swastik Bhattacharjee",
		"target":  dbsapi.HomeURL,
	})
}

// handleBirthdays handles "GET /birthdays". Entries are [name, class,
// section] tuples unless ?tuple is anything other than "true".
func (s *Server) handleBirthdays(c *gin.Context) {
	asTuple := strings.ToLower(c.DefaultQuery("tuple", "true")) == "true"

	birthdays, err := s.SchoolService.Birthdays(c.Request.Context())
	if err != nil {
		s.Error(c, err)
		return
	}

	if asTuple {
		writeJSON(c, http.StatusOK, gin.H{"birthdays": birthdays})
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"birthdays": dbsapi.FormatBirthdays(birthdays)})
}

func (s *Server) handleNotices(c *gin.Context) {
	links, err := s.SchoolService.Notices(c.Request.Context())
	s.writeLinks(c, "notices", links, err)
}

func (s *Server) handleCompetitionResults(c *gin.Context) {
	links, err := s.SchoolService.CompetitionResults(c.Request.Context())
	s.writeLinks(c, "competitionResults", links, err)
}

// writeLinks writes a link list under key. Link lists always answer 200:
// a failure is reported in place of the list as {"error": message}.
func (s *Server) writeLinks(c *gin.Context, key string, links []dbsapi.Link, err error) {
	if err != nil {
		if dbsapi.ErrorCode(err) == dbsapi.EINTERNAL {
			s.LogError(c, err)
		}
		writeJSON(c, http.StatusOK, gin.H{key: gin.H{"error": clientMessage(err)}})
		return
	}
	writeJSON(c, http.StatusOK, gin.H{key: links})
}

func (s *Server) handleHousePoints(c *gin.Context) {
	points, err := s.SchoolService.HousePoints(c.Request.Context())
	if err != nil {
		s.Error(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"housePoints": points})
}

func (s *Server) handleEventLinks(c *gin.Context) {
	events, err := s.SchoolService.Events(c.Request.Context())
	if err != nil {
		s.Error(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"events": events})
}

// handleEventImages handles "GET /eventImages?url=". A missing url is
// rejected by the service before anything is fetched.
func (s *Server) handleEventImages(c *gin.Context) {
	images, err := s.SchoolService.EventImages(c.Request.Context(), c.Query("url"))
	if err != nil {
		s.Error(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"images": images})
}
