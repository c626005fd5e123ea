package business2

import (
	"fmt"
	"strings"
)

// AdPositionCount is the number of ad slots rendered into every listing page.
const AdPositionCount = 6

// adPositionsHTML is the six-slot ad template rendered into every listing:
// leaderboard, in-article, sidebar sticky, below-fold lazy, end-of-article,
// and mobile anchor.
const adPositionsHTML = `
<!-- Position 1: Top Leaderboard (Flat-rate OR Programmatic) -->
<div class="ad-unit ad-leaderboard" data-adunit="leaderboard-728x90">
  <div id="div-gpt-ad-leaderboard" style="min-width:728px;min-height:90px;">
    <script>googletag.cmd.push(function() { googletag.display('div-gpt-ad-leaderboard'); });</script>
  </div>
</div>

<!-- Position 2: In-Article 300x250 (after paragraph 3) -->
<div class="ad-unit ad-in-article" data-adunit="in-article-300x250">
  <div id="div-gpt-ad-in-article">
    <script>googletag.cmd.push(function() { googletag.display('div-gpt-ad-in-article'); });</script>
  </div>
</div>

<!-- Position 3: Sidebar Sticky 300x600 (Prebid) -->
<div class="ad-unit ad-sidebar" data-adunit="sidebar-300x600">
  <div id="div-gpt-ad-sidebar">
    <script>googletag.cmd.push(function() { googletag.display('div-gpt-ad-sidebar'); });</script>
  </div>
</div>

<!-- Position 4: Below-fold lazy-load (Programmatic) -->
<div class="ad-unit ad-below-fold lazy-ad" data-adunit="below-fold-300x250">
  <div id="div-gpt-ad-below-fold">
    <script>googletag.cmd.push(function() { googletag.display('div-gpt-ad-below-fold'); });</script>
  </div>
</div>

<!-- Position 5: End of Article -->
<div class="ad-unit ad-end-article" data-adunit="end-article-728x90">
  <div id="div-gpt-ad-end-article">
    <script>googletag.cmd.push(function() { googletag.display('div-gpt-ad-end-article'); });</script>
  </div>
</div>

<!-- Position 6: Mobile Anchor 320x50 -->
<div class="ad-unit ad-mobile-anchor" data-adunit="mobile-anchor-320x50">
  <div id="div-gpt-ad-mobile-anchor">
    <script>googletag.cmd.push(function() { googletag.display('div-gpt-ad-mobile-anchor'); });</script>
  </div>
</div>`

// prebidConfig is the header-bidding setup injected into the listing head.
const prebidConfig = `
<script>
var pbjs = pbjs || {};
pbjs.que = pbjs.que || [];

pbjs.que.push(function() {
  pbjs.addAdUnits([
    { code: 'div-gpt-ad-in-article', mediaTypes: { banner: { sizes: [[300, 250]] } },
      bids: [
        { bidder: 'appnexus', params: { placementId: 'BDT_PLACEMENT_ID' } },
        { bidder: 'openx', params: { unit: 'BDT_OPENX_UNIT', delDomain: 'bdt-d.openx.net' } },
        { bidder: 'sovrn', params: { tagid: 'BDT_SOVRN_TAGID' } }
      ]
    },
    { code: 'div-gpt-ad-sidebar', mediaTypes: { banner: { sizes: [[300, 600]] } },
      bids: [
        { bidder: 'appnexus', params: { placementId: 'BDT_PLACEMENT_ID_SIDEBAR' } }
      ]
    }
  ]);

  pbjs.setConfig({
    priceGranularity: 'medium',
    enableSendAllBids: true,
    floors: {
      enforcement: { floorDeals: false },
      data: {
        currency: 'USD',
        schema: { fields: ['adUnitCode', 'mediaType'] },
        values: {
          'div-gpt-ad-leaderboard|banner': 2.0,
          'div-gpt-ad-in-article|banner': 3.0,
          'div-gpt-ad-sidebar|banner': 5.0
        }
      }
    }
  });

  pbjs.requestBids({ bidsBackHandler: sendAdServerRequest, timeout: 1500 });
});

function sendAdServerRequest() {
  googletag.cmd.push(function() { pbjs.setTargetingForGPTAsync(); googletag.pubads().refresh(); });
}
</script>`

// renderListingHTML builds the full published listing page: Prebid config in
// the head, article body as paragraphs, all six ad positions in place.
func renderListingHTML(headline, businessName, article string) string {
	var body strings.Builder
	body.WriteString("<p>")
	body.WriteString(strings.ReplaceAll(article, "\n\n", "</p><p>"))
	body.WriteString("</p>")

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>%s | Business 2.0 Magazine</title>
  <meta name="description" content="%s featured in Business 2.0 Magazine">
  %s
</head>
<body>
  <article class="b2-article">
    <div class="article-content">
      %s
    </div>
    %s
  </article>

  <!-- ads.txt reference -->
  <!-- google.com, pub-9653282249123193, DIRECT, f08c47fec0942fa0 -->
</body>
</html>`, headline, businessName, prebidConfig, body.String(), adPositionsHTML)
}
