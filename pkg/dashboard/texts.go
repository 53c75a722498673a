package dashboard

const (
	textTitle = "Formula 1"
	textIntro = `Formula 1 (F1) is the highest class of single-seater racing, officially
known as the FIA Formula One World Championship. Races have been held since 1950. Every
season consists of a series of Grands Prix on circuits all over the world, from street
circuits like Monaco and Singapore to dedicated tracks like Zandvoort.`
	textDataset = `The data comes from the OpenF1 API, a public source of Formula 1 timing
data. This page explores the races of one season: lap times per driver, a comparison
of two drivers and the fastest lap of a driver at the chosen circuit.`
	textPeaks = `Peaks in the chart are laps that took considerably longer, for example
because of a pit stop, a safety car period or an incident on track.`
	textInsights = `Lap times usually drop over the course of a race as the cars burn fuel
and get lighter. Fresh tyres after a pit stop give faster laps, worn tyres slow a
driver down. Comparing two drivers shows who was faster in which phase of the race
and where the pit stops were made.`

	labelLocation      = "Which race do you want to look at?"
	labelDriver        = "Which driver do you want to look at?"
	labelLaps          = "Select the laps to display"
	labelZoom          = "Zoom in on the chart"
	labelCompare       = "Compare with a second driver?"
	labelCompareDriver = "Which driver do you want to compare with?"

	warnNoSessions = "No races available."
	warnNoData     = "No data available for this selection."
)
