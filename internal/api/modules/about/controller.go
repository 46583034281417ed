package about_module

import (
	"github.com/gin-gonic/gin"
	"github.com/shellmates/cyberbot/pkg/sdk"
)

// clubInfo is the static about-us payload. It never changes at runtime,
// so it lives here rather than in the content store.
var clubInfo = sdk.About{
	Name: "Shellmates",
	Description: "Shellmates is a scientific club dedicated to cybersecurity at the " +
		"Higher National School of Computer Science (ESI), Algiers, Algeria. " +
		"/* Where there is a Shell, There is a way */",
	Founded: "2011",
	Mission: "Encourage hands-on learning through workshops and challenges. " +
		"Teach and inspire anyone passionate about cybersecurity. " +
		"Build a strong cybersecurity community.",
	Departments: []sdk.Department{
		{Name: "Technical Department", Description: "Works on creating and maintaining the club's digital platforms and tools, with a focus on CTF competitions and problem-solving challenges."},
		{Name: "Events Department", Description: "Plans engaging events, workshops and gatherings that keep members motivated and connected."},
		{Name: "Communication Department", Description: "Manages the club's image and voice on social media."},
		{Name: "Sponsoring Department", Description: "Builds relationships with sponsors and partners to support the club's projects."},
	},
	Activities: []string{
		"Shellmates CTF - Annual Capture The Flag competition",
		"Weekly workshops and training sessions",
		"Hack.ini - Training program for beginners",
		"Participation in international cybersecurity competitions",
	},
	Website:  "https://www.shellmates.club/",
	Email:    "shellmates@esi.dz",
	Location: "École nationale supérieure d'informatique, Oued Smar, Algiers, Algeria",
}

// GetAbout returns static information about the club
func GetAbout(c *gin.Context) {
	c.JSON(sdk.NewSuccessResponse("About info retrieved successfully", clubInfo).AsGinResponse())
}
