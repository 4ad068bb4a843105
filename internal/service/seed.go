package service

import "github.com/lakaytv/lakaytv/internal/models"

// sampleChannels is the bundled sample dataset applied by SeedSampleData.
// It is configuration data, not logic, and can be swapped freely.
var sampleChannels = []models.ChannelInput{
	{Name: "Tele Pacific", Logo: "https://static.wikia.nocookie.net/logopedia/images/e/e6/Radio_T%C3%A9l%C3%A9_Pacific_Logo.png", Stream: "https://hls-p1st0n8r.livepush.io/live_cdn/nsOk3qoty1d5HDD/emB7xoUdyMbnjH8/tracks-v1a1/mono.m3u8", Category: "News"},
	{Name: "Tele Ginen", Logo: "https://static.wikia.nocookie.net/logopedia/images/0/09/RTG_Logo_%28With_Full_Name%29.png", Stream: "http://teleginen.srfms.com:1935/teleginen/livestream/chunklist_w531595620.m3u8", Category: "General"},
	{Name: "Haiti News", Logo: "https://m.media-amazon.com/images/I/611Ffvky5yL.png", Stream: "https://haititivi.com/website/haitinews/index.m3u8", Category: "News"},
	{Name: "Ayiti TV", Logo: "https://m.media-amazon.com/images/I/61k8Qk5j9-L.png", Stream: "http://fuego-iptv.net:80/play/live.php?mac=00:1A:79:7d:b0:58&stream=276315&extension=ts&play_token=G01xkhIy81", Category: "General"},
	{Name: "Telemix", Logo: "https://i.ibb.co/RB7dzZq/logo-mix-2.png", Stream: "https://haititivi.com/haiti/telemix1/tracks-v1a1/mono.m3u8", Category: "Entertainment"},
	{Name: "SNL", Logo: "https://i.ibb.co/2NW7kFM/images.jpg", Stream: "https://haititivi.com/haititv/tvs/mono.m3u8", Category: "General"},
	{Name: "Kajou TV", Logo: "https://static.wixstatic.com/media/d205b7_ced5950afd8849e2b21a72f36b3a16ff~mv2.png", Stream: "https://video1.getstreamhosting.com:1936/8055/8055/chunklist_w1507178321.m3u8", Category: "Entertainment"},
	{Name: "RTH 2000", Logo: "https://i.imgur.com/4z0FiEA.png", Stream: "https://2-fss-2.streamhoster.com/pl_120/amlst:206708-4203440/chunklist_b3500000.m3u8", Category: "General"},
	{Name: "Radio Tele Puissance", Logo: "https://radiotelepuissance.com/wp-content/uploads/2020/08/cropped-radio-logo-1.png", Stream: "https://video1.getstreamhosting.com:1936/8560/8560/chunklist_w486676635.m3u8", Category: "General"},
	{Name: "4Diaspo TV", Logo: "https://m.media-amazon.com/images/I/71w9kTfB7xL.png", Stream: "https://59d39900ebfb8.streamlock.net/4DIASPOTV/4DIASPOTV/chunklist_w507710567.m3u8", Category: "General"},
	{Name: "Tele Pam", Logo: "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcTabRikF9IncQwcgdXkg3Xu2TwVwrnIHbZdjA&s", Stream: "https://lakay.online/ott/telepam/tracks-v1a1/mono.m3u8", Category: "General"},
	{Name: "Trace Urban", Logo: "https://upload.wikimedia.org/wikipedia/commons/thumb/5/5c/Trace_Urban_logo_2010.svg/2560px-Trace_Urban_logo_2010.svg.png", Stream: "https://lightning-traceurban-samsungau.amagi.tv/playlist.m3u8", Category: "Music"},
	{Name: "Trace Latina", Logo: "https://upload.wikimedia.org/wikipedia/commons/thumb/0/04/TRACE_Latina_Logo.png/1280px-TRACE_Latina_Logo.png", Stream: "https://cdn-ue1-prod.tsv2.amagi.tv/linear/amg01131-tracetv-tracelatinait-samsungit/playlist.m3u8", Category: "Music"},
	{Name: "Bblack Caribbean", Logo: "https://i1.wp.com/vjdid.com/wp-content/uploads/2017/10/logo-bblack-caribbean-contour-noir.png", Stream: "https://edge16.vedge.infomaniak.com/livecast/ik:bblackcaribbean/chunklist_w2059905249.m3u8", Category: "Music"},
	{Name: "Tele Louange", Logo: "https://images.givelively.org/nonprofits/cb2020c9-71c2-4920-ad32-36f63bd7aef6/logos/christian-multi-media-network_processed_96612ebe1aaa555d1ff9fcfdde6a3ca3be40c8313_logo.png", Stream: "https://5790d294af2dc.streamlock.net/8124/8124/chunklist_w1901943944.m3u8", Category: "Religious"},
}
