package bot

const (
	msgWelcome = `I'm the bot in charge of maintaining the <b>@BotList</b> channel, the most reliable and unbiased bot catalog out there. I was built to simplify navigation and to automate the process of submitting, reviewing and publishing bots by the <b>@BotListChat</b> community.

🔘 <b>First steps:</b>
1️⃣ Start off by using the <b>/categories</b> command and use the available buttons from there on.
2️⃣ Send individual <b>@BotList</b> categories to your friends via inline search (i.e. type <b>@botlistbot music</b> in any chat).
3️⃣ Add me to your groups and <b>/subscribe</b> to BotList updates.
4️⃣ Join the <b>@BotListChat</b> community and <b>/contribute</b> to the BotList: <b>#new @newbot</b>🖊 - description

You can send or forward any bot <b>@username</b> to me, and I will tell you if it exists in the <b>@BotList</b>.

<b>ONE STEP CLOSER TO WORLD DOMINATION</b> 👑`

	msgHelp = `<b>Available commands:</b>

/categories - Browse bots by category
/explore - Discover random bots
/search &lt;query&gt; - Search the BotList
/favorites - Your favorite bots
/new @username - description - Submit a bot for review
/mybots - Your submissions
/newbots - Recently added bots
/bestbots - Top rated bots
/offline @username - Report an offline bot
/spam @username - Report a spammy bot
/subscribe - Get BotList updates in this chat
/unsubscribe - Stop receiving updates
/rules - Submission rules`

	msgContributing = `You can use the following <b>#tags</b> with a bot <b>@username</b> to contribute to the BotList:

• <b>#new</b> — Submit a fresh bot. Use 🔎 if it supports inline queries and flag emojis to denote the language. Everything after the – character can be your description of the bot.
• <b>#offline</b> — Mark a bot as offline.
• <b>#spam</b> — Tell us that a bot spams too much.

There are also the corresponding <b>/new</b>, <b>/offline</b> and <b>/spam</b> commands. The moderators will approve your submission as soon as possible.

<b>Next step:</b> Have a look at the <b>/examples</b>!`

	msgExamples = `<b>Examples</b> for contributing to the BotList:

• "Wow! I found this nice <b>#new</b> bot: <b>@coolbot</b> 🔎 🇮🇹 - Cools your drinks in the fridge."
• <b>/new @coolbot</b> 🔎 🇮🇹 - Cools your drinks in the fridge.

• "Oh no... guys?! <b>@unresponsive_bot</b> is <b>#offline</b> 😫"
• <b>/offline @unresponsive_bot</b>

• "Aaaargh, <b>@spambot</b>'s <b>#spam</b> is too crazy!"
• <b>/spam @spambot</b>`

	msgRules = `<b>Submission rules:</b>

1. The bot must be online and respond to /start.
2. No duplicates of bots already in the BotList.
3. Provide a short, honest description.
4. Spammy or malicious bots are removed and their submitters banned.`

	msgTryInline = "You can try me inline by typing <b>@botlistbot</b> in any chat."

	msgCategoriesIntro = "📂 <b>Bot Categories</b>\n\nSelect a category to browse bots:"

	msgExploreIntro = "🎲 <b>Explore</b>\n\nHere are some random bots from the BotList:"
	msgExploreEmpty = "The BotList is empty right now. Check back later!"

	msgFavoritesIntro     = "⭐ <b>Your Favorites</b>"
	msgFavoritesEmpty     = "⭐ You have no favorite bots yet.\n\nBrowse the categories and add some!"
	msgFavoritesAddPrompt = "Send me a bot @username to add it to your favorites."
	msgFavoritesRemoved   = "Removed from favorites"

	msgSearchPrompt   = "🔍 What are you looking for? Send <code>/search &lt;query&gt;</code> with at least 3 characters."
	msgSearchTooShort = "Your query is too short, minimum query length allowed is 3."
	msgSearchEmpty    = "🤷 No bots found for your query."
	msgSearchResults  = "🔍 Search results"

	msgNewBotPrompt  = "Submit a bot like this:\n<code>/new @username - description</code>"
	msgNewBotInvalid = "Please include the bot's @username, e.g. <code>/new @coolbot - Cools your drinks</code>."
	msgNewBotSuccess = "✅ Thanks! Your bot was submitted for review. The moderators will have a look soon."
	msgNewBotExists  = "This bot is already in the BotList."
	msgNewBotPending = "This bot has already been submitted and is pending review."
	msgNewBotBanned  = "You are banned from submitting bots."

	msgSpamPrompt   = "Report a spammy bot like this:\n<code>/spam @username</code>"
	msgSpamSuccess  = "✅ Thanks! Your spam report was recorded."
	msgSpamNotFound = "That bot is not in the BotList."
	msgSpamAlready  = "You have already reported this bot."
	msgSpamBanned   = "You are banned from reporting."

	msgOfflinePrompt   = "Report an offline bot like this:\n<code>/offline @username</code>"
	msgOfflineSuccess  = "✅ Thanks! The bot was marked as offline."
	msgOfflineNotFound = "That bot is not in the BotList."
	msgOfflineAlready  = "This bot has already been reported as offline."
	msgOfflineBanned   = "You are banned from reporting."

	msgNewBotsIntro  = "🆕 <b>Newest additions to the BotList:</b>"
	msgNewBotsEmpty  = "No new bots right now."
	msgBestBotsIntro = "🏆 <b>Best rated bots:</b>"
	msgBestBotsEmpty = "No rated bots yet."

	msgMyBotsIntro = "🤖 <b>Your bots</b>"
	msgMyBotsEmpty = "You haven't submitted any bots yet.\n\nUse <code>/new @username - description</code> to submit one."

	msgSubscribeSuccess   = "🔔 Subscribed! This chat will receive BotList updates."
	msgSubscribeAlready   = "This chat is already subscribed."
	msgUnsubscribeSuccess = "🔕 Unsubscribed. This chat will no longer receive updates."
	msgUnsubscribeMissing = "This chat has no active subscription."

	msgAdminPanel          = "🛠 <b>Admin Panel</b>\n\nPick an action below, or use /review to moderate pending submissions."
	msgAdminUnauthorized   = "Admins only."
	msgAdminReviewIntro    = "📋 <b>Pending submissions:</b>"
	msgAdminReviewEmpty    = "📋 No pending submissions. All caught up!"
	msgAdminAddUsage       = "Add a bot directly:\n<code>/addbot @username | name | description | category</code>"
	msgAdminAddSuccess     = "✅ Bot added to the BotList."
	msgAdminAddExists      = "That bot is already in the BotList."
	msgAdminUpdateUsage    = "Update a bot:\n<code>/updatebot @username | name | description | category</code>"
	msgAdminUpdateSuccess  = "✅ Bot updated."
	msgAdminUpdateNoChange = "Nothing to update. Provide at least one field."
	msgAdminCategoryBad    = "Unknown category. Use a category id (1-28) or part of its name."
	msgAdminApproveSuccess = "✅ Submission approved and published:"
	msgAdminRejectSuccess  = "❌ Submission rejected."
	msgAdminBanUsage       = "Ban a user:\n<code>/ban &lt;telegramId&gt;</code>"
	msgAdminBanSuccess     = "🚫 User banned."
	msgAdminUnbanUsage     = "Unban a user:\n<code>/unban &lt;telegramId&gt;</code>"
	msgAdminUnbanSuccess   = "♻️ User unbanned."
	msgAdminUnbanMissing   = "User not found."
	msgAdminUserinfoUsage  = "Look up a user:\n<code>/userinfo &lt;telegramId&gt;</code>"
	msgAdminUserinfoNone   = "User not found."

	msgNoUserID  = "Could not identify your user ID."
	msgTryLater  = "Sorry, something went wrong. Please try again later."
	msgCancelled = "Cancelled"
)
