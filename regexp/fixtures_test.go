package regexp_test

import (
	"fmt"
	"strings"
)

// standardCell renders one gallery row of the standard layout with a direct
// thumbnail.
func standardCell(category, posted, detailURL, title, ratingStyle, uploader string) string {
	return `<tr class="gtr0">` +
		`<td class="itdc"><a href="https://e-hentai.org/` + strings.ToLower(category) + `"><img src="https://ehgt.org/g/c/cat.png" alt="` + category + `" class="ic" /></a></td>` +
		`<td class="itd" style="white-space:nowrap">` + posted + `</td>` +
		`<td class="itd" onmouseover="show_image_pane(1)"><div class="it1"><div class="it2" id="i1" style="height:140px; width:200px">` +
		`<img src="https://ehgt.org/t/aa/bb/thumb.jpg" alt="` + title + `" style="margin:0" />` +
		`</div><div class="it3"><div class="i">tn</div></div>` +
		`<div class="it5"><a href="` + detailURL + `" onmouseover="hide_image_pane(1)">` + title + `</a></div>` +
		`<div class="it4"><div class="ir it4r" style="` + ratingStyle + `"></div></div></div></td>` +
		`<td class="itu"><div><a href="https://e-hentai.org/uploader/` + uploader + `">` + uploader + `</a></div></td>` +
		`</tr>`
}

// compressedCell renders one standard row whose thumbnail is lazily loaded
// from an "init~" path.
func compressedCell(detailURL, initText string) string {
	return `<tr class="gtr1">` +
		`<td class="itdc"><img src="https://ehgt.org/g/c/cat.png" alt="Western" class="ic" /></td>` +
		`<td class="itd" style="white-space:nowrap">2015-06-02 08:00</td>` +
		`<td class="itd" onmouseover="show_image_pane(2)"><div class="it1"><div class="it2" id="i2" style="height:150px; width:210px">` +
		initText +
		`</div><div class="it3"></div>` +
		`<div class="it5"><a href="` + detailURL + `" onmouseover="hide_image_pane(2)">Lazy Title</a></div>` +
		`<div class="it4"><div class="ir it4r" style="background-position:-32px -1px;opacity:1"></div></div></div></td>` +
		`<td class="itu"><div><a href="https://e-hentai.org/uploader/carol">carol</a></div></td>` +
		`</tr>`
}

// pager renders the standard pagination bar ending at lastPage.
func pager(lastPage int) string {
	return `<table class="ptt"><tr>` +
		`<td class="ptds"><a href="https://e-hentai.org/?page=0">1</a></td>` +
		fmt.Sprintf(`<td><a href="https://e-hentai.org/?page=%d">%d</a></td>`, lastPage-1, lastPage) +
		`<td onclick="sp(1)"><a href="https://e-hentai.org/?page=1">&gt;</a></td>` +
		`</tr></table>`
}

func standardPage(lastPage int, cells ...string) string {
	return `<html><body><div class="ido">` + pager(lastPage) +
		`<table class="itg"><tr><th>Type</th></tr>` + strings.Join(cells, "") + `</table>` +
		`</div></body></html>`
}

// lofiCell renders one gallery block of the lofi layout.
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
	nav := `<div id="ia"><a href="https://lofi.e-hentai.org/?page=0">&lt; Prev Page</a>`
	if next {
		nav += ` <a href="https://lofi.e-hentai.org/?page=2">Next Page &gt;</a>`
	}
	nav += `</div>`
	return `<html><body><div id="ig">` + strings.Join(cells, "") + `</div>` + nav + `</body></html>`
}
