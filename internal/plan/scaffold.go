package plan

import (
	"fmt"
	"time"
)

// Scaffold returns the section skeleton written for a brand-new user so the
// agent has named sections to update from the first turn. The document title
// is added by the repository on first write.
func Scaffold() string {
	return fmt.Sprintf(`## Personal Information
- Created: %s

## Medical Information
- Due Date: TBD
- Healthcare Provider: TBD

## Appointments
- No appointments scheduled yet

## Notes
- Add your pregnancy-related notes here

## Questions for Healthcare Provider
- Add your questions here

## Resources
- Add helpful resources and links here
`, time.Now().Format("2006-01-02"))
}
