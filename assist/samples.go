package assist

// sampleDoc is a built-in knowledge article authored in markdown.
type sampleDoc struct {
	id       string
	title    string
	url      string
	category string
	body     string
}

var sampleDocs = []sampleDoc{
	{
		id:       "sample-001",
		title:    "About Assist Suggestions",
		url:      "https://docs.example.com/articles/about-assist-suggestions/",
		category: "AI",
		body: `Assist suggestions surface recommended replies to agents during a
conversation.

## How it works

- The last customer message is matched against the knowledge base
- Sentiment is detected to pick an appropriate tone
- Up to three suggestions are offered in the composer

## Requirements

- Knowledge base connection configured
- NLU confidence threshold set (default 0.7)
- Queue configuration enables the assist panel`,
	},
	{
		id:       "sample-002",
		title:    "Configure Assist Suggestions",
		url:      "https://docs.example.com/articles/configure-assist-suggestions/",
		category: "AI",
		body: `Configure assist suggestions for your contact center.

## Steps

1. Navigate to Admin > AI > Assist Settings
2. Select the knowledge base to use
3. Set the NLU confidence threshold (try lowering to 0.6 if suggestions
   are not appearing)
4. Assign the configuration to queues

## Troubleshooting

If suggestions are not showing, check the knowledge base connection, the
confidence threshold, and the queue configuration.`,
	},
	{
		id:       "sample-003",
		title:    "About Queues and Routing",
		url:      "https://docs.example.com/articles/about-queues/",
		category: "Contact Center",
		body: `Queues hold interactions waiting for an agent.

## Queue settings

- Membership: which agents receive work
- Routing method: round robin, most idle, or skills-based
- Service level targets and wrap-up codes

## Skills-based routing

Skills-based routing matches interactions to agents with the required
skill and proficiency. Configure skills under Admin > Contact Center >
Skills, then add skill requirements to the routing step.`,
	},
	{
		id:       "sample-004",
		title:    "About Web Messaging",
		url:      "https://docs.example.com/articles/about-web-messaging/",
		category: "Digital",
		body: `Web messaging lets customers chat from your website.

## Setup

1. Create a messenger deployment under Admin > Message > Messenger
   Deployments
2. Copy the snippet to your site
3. Route messages to a queue with an inbound message flow

## Features

- Persistent conversation history
- Typing indicators on both sides
- File attachments and rich text`,
	},
	{
		id:       "sample-005",
		title:    "Troubleshoot Web Messaging",
		url:      "https://docs.example.com/articles/troubleshoot-web-messaging/",
		category: "Troubleshooting",
		body: `Common web messaging problems and fixes.

## Messenger not loading

- Verify the deployment snippet is present on the page
- Check the allowed domains list on the deployment
- Confirm the deployment status is active

## Messages not reaching agents

- The inbound message flow must transfer to a queue
- Agents must be on-queue and have the messaging skill
- Check the error log in the flow editor`,
	},
	{
		id:       "sample-006",
		title:    "About the Knowledge Workbench",
		url:      "https://docs.example.com/articles/about-knowledge-workbench/",
		category: "AI",
		body: `The knowledge workbench is where articles are authored and
published.

## Authoring

- Articles support markdown formatting
- Group articles into categories for filtering
- Publish a version before it becomes searchable

## Connecting

Link a knowledge base to assist suggestions and bot flows under
Admin > Knowledge. One knowledge base can serve several queues.`,
	},
}

// LoadSamples indexes the built-in sample articles.
func (s *Store) LoadSamples() error {
	for _, d := range sampleDocs {
		if err := s.AddMarkdown(d.id, d.title, d.url, d.category, []byte(d.body)); err != nil {
			return err
		}
	}
	return nil
}
