package content

import (
	"net/url"
	"strconv"
	"strings"
)

// Locators builds edit and view links for records.
type Locators struct {
	adminURL string
	siteURL  string
}

// NewLocators creates a locator builder from the admin and site base URLs.
func NewLocators(adminURL, siteURL string) Locators {
	return Locators{
		adminURL: strings.TrimRight(adminURL, "/"),
		siteURL:  strings.TrimRight(siteURL, "/"),
	}
}

// EditDocument returns the edit link of a document.
func (l Locators) EditDocument(id int64) string {
	return l.adminURL + "/documents/" + strconv.FormatInt(id, 10) + "/edit"
}

// ViewDocument returns the public link of a document.
func (l Locators) ViewDocument(id int64) string {
	return l.siteURL + "/documents/" + strconv.FormatInt(id, 10)
}

// EditSetting returns the link of the settings screen focused on name.
func (l Locators) EditSetting(name string) string {
	return l.adminURL + "/settings?" + url.Values{"setting": {name}}.Encode()
}

// ViewSite returns the site root, where settings are rendered.
func (l Locators) ViewSite() string {
	return l.siteURL + "/"
}
