// Package support holds the fixed safety and self-care content. It is
// rendered verbatim and never sourced from the model, so it stays
// accurate and available even when the model call fails.
package support

// CheckInLead opens the check-in/crisis reply before the resource block.
const CheckInLead = "It sounds like things are really tough right now. Sometimes, talking to someone can make a world of difference."

// CrisisResourcesHTML is the pre-escaped resource block appended on
// check-in and crisis turns.
const CrisisResourcesHTML = `Remember, it's okay to ask for help. You can connect with people who can support you by calling or texting <strong>988</strong> in the US and Canada, or by visiting the <a href="https://988lifeline.org/" target="_blank">988 Lifeline website</a>. You're not alone in this.`

// TipsHTML is the pre-escaped mental-health tips block served from the
// tips endpoint.
const TipsHTML = `<strong>Mental Health Tips:</strong><br>` +
	`• Take a deep breath and pause.<br>` +
	`• Talk to someone you trust.<br>` +
	`• Go for a short walk.<br>` +
	`• Practice gratitude.<br>` +
	`• If you need help, consider reaching out to a counselor or helpline.<br>` +
	`<a href="https://www.befrienders.org/" target="_blank">Find support near you</a>`

// Resource is one entry of the structured crisis-resource list.
type Resource struct {
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
	URL     string `json:"url,omitempty"`
}

// CrisisResources lists hotlines and support platforms for clients
// that render their own resource UI.
func CrisisResources() []Resource {
	return []Resource{
		{Name: "988 Suicide & Crisis Lifeline", Contact: "Call or text 988 (US & Canada)", URL: "https://988lifeline.org/"},
		{Name: "Crisis Text Line", Contact: "Text HOME to 741741", URL: "https://www.crisistextline.org/"},
		{Name: "Befrienders Worldwide", URL: "https://www.befrienders.org/"},
		{Name: "International Association for Suicide Prevention", URL: "https://www.iasp.info/resources/Crisis_Centres/"},
	}
}
