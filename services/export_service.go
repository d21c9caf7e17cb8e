package services

import (
	"errors"
	"html/template"
	"io"
	"net/url"

	"hot100-service/repositories"
)

// Search sites the export links out to. Each chart row gets one
// site-restricted Google search link per site.
var searchSites = []searchSite{
	{Site: "music.apple.com", Icon: "./applemusic.png", Name: "Apple Music"},
	{Site: "open.spotify.com", Icon: "./spotify.png", Name: "Spotify"},
}

type searchSite struct {
	Site string
	Icon string
	Name string
}

type exportLink struct {
	URL  string
	Icon string
	Name string
}

type exportRow struct {
	Artist string
	Song   string
	Links  []exportLink
}

// ExportService renders the whole chart as a single HTML page: a table of
// artist/song rows ordered by artist then song, with search links per row.
type ExportService interface {
	WriteHTML(w io.Writer) error
}

type exportService struct {
	entryRepo repositories.HotEntryRepository
}

func NewExportService(entryRepo repositories.HotEntryRepository) ExportService {
	return &exportService{entryRepo: entryRepo}
}

func (s *exportService) WriteHTML(w io.Writer) error {
	entries, err := s.entryRepo.GetAllOrdered()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return errors.New("no chart entries to export")
	}

	data := struct {
		Sites []searchSite
		Rows  []exportRow
	}{Sites: searchSites}

	for _, entry := range entries {
		row := exportRow{Artist: entry.Artist, Song: entry.Song}
		for _, site := range searchSites {
			row.Links = append(row.Links, exportLink{
				URL:  searchURL(site.Site, entry.Artist+" "+entry.Song),
				Icon: site.Icon,
				Name: site.Name,
			})
		}
		data.Rows = append(data.Rows, row)
	}

	return exportTemplate.Execute(w, data)
}

// searchURL builds a Google search URL restricted to one site.
func searchURL(site, query string) string {
	params := url.Values{}
	params.Set("q", query+" site:"+site)
	return "https://www.google.com/search?" + params.Encode()
}

var exportTemplate = template.Must(template.New("export").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Billboard Hot 100 Search Links</title>
    <style>
        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            margin: 20px;
            background-color: #f5f5f5;
        }
        .container {
            max-width: 1200px;
            margin: 0 auto;
        }
        table {
            width: 100%;
            border-collapse: collapse;
            background-color: white;
            box-shadow: 0 1px 3px rgba(0,0,0,0.2);
            border-radius: 8px;
            overflow: hidden;
        }
        th {
            background-color: #4a90e2;
            color: white;
            padding: 12px;
            text-align: left;
        }
        td {
            padding: 12px;
            border-bottom: 1px solid #ddd;
        }
        tr:hover {
            background-color: #f8f9fa;
        }
        .search-icon {
            width: 16px;
            height: 16px;
            vertical-align: middle;
        }
        a {
            color: #4a90e2;
            text-decoration: none;
        }
        a:hover {
            text-decoration: underline;
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>Billboard Hot 100 Search Links</h1>
        <table>
            <thead>
                <tr>
                    <th>Artist</th>
                    <th>Song</th>
{{- range .Sites}}
                    <th>{{.Name}}</th>
{{- end}}
                </tr>
            </thead>
            <tbody>
{{- range .Rows}}
                <tr>
                    <td>{{.Artist}}</td>
                    <td>{{.Song}}</td>
{{- range .Links}}
                    <td><a href="{{.URL}}" target="_blank"><img src="{{.Icon}}" class="search-icon" alt="{{.Name}}"></a></td>
{{- end}}
                </tr>
{{- end}}
            </tbody>
        </table>
    </div>
</body>
</html>
`))
