package main_test

import "strings"

func lofiCell(detailURL, title, postedBy, category, tags, rating string) string {
	return `<table class="it"><tr>` +
		`<td class="ii"><a href="` + detailURL + `"><img src="https://ehgt.org/t/ee/ff/lofi.jpg" alt="cover" /></a></td>` +
		`<td class="ik"><table><tr><td colspan="2"><a class="b" href="` + detailURL + `">` + title + `</a></td>` +
		`</tr><tr><td class="ik ip">Posted:</td><td class="ip">` + postedBy + `</td>` +
		`</tr><tr><td class="ik">Category:</td><td>` + category + `</td>` +
		`</tr><tr><td class="ik">Tags:</td><td>` + tags + `</td>` +
		`</tr><tr><td class="ik">Rating:</td><td class="ir">` + rating + `</td>` +
		`</tr></table></td></tr></table>`
}

func lofiPage(next bool, cells ...string) string {
	nav := `<div id="ia"><a href="/?page=0">&lt; Prev Page</a>`
	if next {
		nav += ` <a href="/?page=2">Next Page &gt;</a>`
	}
	nav += `</div>`
	return `<html><body><div id="ig">` + strings.Join(cells, "") + `</div>` + nav + `</body></html>`
}
